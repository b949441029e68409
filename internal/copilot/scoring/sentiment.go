package scoring

import (
	"fmt"
	"math"

	"golang-stock-copilot/internal/copilot/calculator"
	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/pkg/utils"
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// NewsSentiment estimates headline sentiment from the last week of price and volume action.
func NewsSentiment(ticker string, bars []dto.OHLCV) *dto.NewsSentiment {
	if len(bars) == 0 {
		return &dto.NewsSentiment{Sentiment: SentimentNeutral, Headlines: []string{}}
	}
	closes := calculator.Closes(bars)
	volumes := calculator.Volumes(bars)
	n := len(closes)

	var change float64
	if n >= 5 && closes[n-5] != 0 {
		change = (closes[n-1]/closes[n-5] - 1) * 100
	}
	volRatio := 1.0
	if avg, err := calculator.SMA(volumes, 10); err == nil && avg > 0 {
		volRatio = volumes[n-1] / avg
	}

	var score float64
	var headlines []string
	switch {
	case change > 5:
		score = 0.7
		headlines = []string{
			fmt.Sprintf("%s Shows Strong Momentum with %.1f%% Gain", ticker, change),
			fmt.Sprintf("Analysts Bullish on %s Following Recent Rally", ticker),
			fmt.Sprintf("%s Breaks Key Resistance Levels", ticker),
		}
	case change > 2:
		score = 0.4
		headlines = []string{
			fmt.Sprintf("%s Gains Ground with Positive Momentum", ticker),
			fmt.Sprintf("Moderate Optimism Surrounding %s Performance", ticker),
		}
	case change < -5:
		score = -0.7
		headlines = []string{
			fmt.Sprintf("%s Faces Headwinds with %.1f%% Decline", ticker, change),
			fmt.Sprintf("Concerns Mount Over %s Recent Performance", ticker),
			fmt.Sprintf("%s Tests Support Levels Amid Selling Pressure", ticker),
		}
	case change < -2:
		score = -0.4
		headlines = []string{
			fmt.Sprintf("%s Experiences Moderate Decline", ticker),
			fmt.Sprintf("Cautious Sentiment Around %s Outlook", ticker),
		}
	default:
		score = 0.1
		headlines = []string{
			fmt.Sprintf("%s Maintains Stable Trading Range", ticker),
			fmt.Sprintf("Mixed Signals for %s Market Position", ticker),
		}
	}

	if volRatio > 1.5 {
		score *= 1.2
	} else if volRatio < 0.7 {
		score *= 0.8
	}

	sentiment := SentimentNeutral
	if score > 0.3 {
		sentiment = SentimentPositive
	} else if score < -0.3 {
		sentiment = SentimentNegative
	}
	confidence := "medium"
	if math.Abs(score) > 0.5 {
		confidence = "high"
	}

	return &dto.NewsSentiment{
		Sentiment:   sentiment,
		Score:       utils.Round(score, 2),
		Headlines:   headlines,
		Confidence:  confidence,
		VolumeSurge: volRatio > 1.5,
		Momentum:    change,
	}
}
