package telegram

import (
	"fmt"
	"strings"
	"time"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/pkg/utils"
)

const maxMessageLen = 4090

// FormatAlertMessage renders a triggered user alert.
func FormatAlertMessage(alert dto.Alert, value float64, at time.Time) string {
	var title, emoji, unit string
	switch alert.Type {
	case dto.AlertTypePriceAbove:
		title, emoji, unit = "Price above target", "🚀", "$"
	case dto.AlertTypePriceBelow:
		title, emoji, unit = "Price below target", "⚠️", "$"
	case dto.AlertTypeScoreAbove:
		title, emoji = "Score above threshold", "📈"
	case dto.AlertTypeScoreBelow:
		title, emoji = "Score below threshold", "📉"
	default:
		title, emoji = "Alert", "🔔"
	}
	if alert.Priority == "urgent" || alert.Priority == "high" {
		emoji = "🚨 " + emoji
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%s [%s] %s\n", emoji, alert.Ticker, title))
	builder.WriteString(fmt.Sprintf("💰 Now: %s%.2f (threshold: %s%.2f)\n", unit, value, unit, alert.Threshold))
	builder.WriteString(fmt.Sprintf("%s\n", utils.PrettyDate(at)))
	return builder.String()
}

// FormatUrgentSignals renders strong signals as one or more messages that fit Telegram's size limit.
func FormatUrgentSignals(assets []dto.ScoredAsset, at time.Time) []string {
	if len(assets) == 0 {
		return nil
	}

	var messages []string
	var current strings.Builder
	part := 1
	startNewPart := func() {
		current.Reset()
		if part == 1 {
			current.WriteString(fmt.Sprintf("🔥 *Urgent signals* (%s)\n\n", utils.PrettyDate(at)))
		} else {
			current.WriteString(fmt.Sprintf("--- *Urgent signals part %d* ---\n\n", part))
		}
	}
	startNewPart()

	for _, a := range assets {
		var entry strings.Builder
		entry.WriteString(fmt.Sprintf("📊 *%s* %s score *%.0f*\n", a.Ticker, a.Recommendation, a.Score))
		entry.WriteString(fmt.Sprintf("💵 $%.2f | RSI %.1f | 1M %+.1f%%\n", a.Price, a.RSI, a.Momentum1M))
		if a.NumExperts > 0 {
			entry.WriteString(fmt.Sprintf("🏦 Held by %d tracked investors\n", a.NumExperts))
		}
		if len(a.Reasoning) > 0 {
			entry.WriteString(fmt.Sprintf("💡 %s\n", a.Reasoning[0]))
		}
		entry.WriteString("\n")

		if current.Len()+entry.Len() > maxMessageLen {
			messages = append(messages, current.String())
			part++
			startNewPart()
		}
		current.WriteString(entry.String())
	}
	messages = append(messages, current.String())
	return messages
}
