package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/scoring"
	"golang-stock-copilot/pkg/logger"
	"golang-stock-copilot/pkg/utils"
)

const reportRows = 25

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	buyStyle    = cellStyle.Foreground(lipgloss.Color("#10B981")).Bold(true)
	sellStyle   = cellStyle.Foreground(lipgloss.Color("#EF4444"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

var assetHeaders = []string{"Ticker", "Sector", "Price", "Score", "Signal", "RSI", "1M %", "Risk"}

func assetRow(a dto.ScoredAsset) []string {
	return []string{
		a.Ticker,
		a.Sector,
		fmt.Sprintf("%.2f", a.Price),
		fmt.Sprintf("%.0f", a.Score),
		a.Recommendation,
		fmt.Sprintf("%.1f", a.RSI),
		fmt.Sprintf("%+.1f", a.Momentum1M),
		a.RiskLevel,
	}
}

func renderAssets(assets []dto.ScoredAsset) string {
	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, assetRow(a))
	}
	const signalCol = 4
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(assetHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == signalCol && row >= 0 && row < len(rows) {
				switch signal := rows[row][col]; {
				case scoring.IsBuy(signal):
					return buyStyle
				case strings.Contains(signal, "SELL"):
					return sellStyle
				}
			}
			return cellStyle
		}).
		String()
}

func renderSnapshot(snap *dto.MarketSnapshot) string {
	assets := snap.Assets
	if len(assets) > reportRows {
		assets = assets[:reportRows]
	}
	title := titleStyle.Render(fmt.Sprintf("Analysis cycle %s", utils.PrettyDate(snap.Timestamp)))
	footer := mutedStyle.Render(fmt.Sprintf("%d assets analysed from a universe of %d", snap.TotalAnalyzed, snap.TotalUniverse))
	return lipgloss.JoinVertical(lipgloss.Left, title, renderAssets(assets), footer)
}

var opportunityHeaders = []string{"Ticker", "Entry", "Target", "Stop", "Prob %", "Return %", "Timeline"}

func renderOpportunities(resp dto.TopOpportunitiesResponse) string {
	rows := make([][]string, 0, len(resp.Opportunities))
	for _, o := range resp.Opportunities {
		rows = append(rows, []string{
			o.Ticker,
			fmt.Sprintf("%.2f", o.EntryPrice),
			fmt.Sprintf("%.2f", o.TargetPrice),
			fmt.Sprintf("%.2f", o.StopLoss),
			fmt.Sprintf("%.0f", o.ProfitProbability*100),
			fmt.Sprintf("%.1f", o.ExpectedReturn),
			o.Timeline,
		})
	}
	title := titleStyle.Render(fmt.Sprintf("Top opportunities (%d)", resp.Count))
	if len(rows) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, mutedStyle.Render("No asset meets the ranking criteria"))
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(opportunityHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String())
}

func renderTickers(ctx context.Context, a *app, tickers []string) string {
	assets := make([]dto.ScoredAsset, 0, len(tickers))
	for _, t := range tickers {
		asset, err := a.analysis.AnalyzeTicker(ctx, t)
		if err != nil {
			a.logger.Warn("Skipping ticker", logger.StringField("ticker", t), logger.ErrorField(err))
			continue
		}
		assets = append(assets, *asset)
	}
	title := titleStyle.Render("Live analysis")
	return lipgloss.JoinVertical(lipgloss.Left, title, renderAssets(assets))
}
