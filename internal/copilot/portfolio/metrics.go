package portfolio

import (
	"sort"

	"github.com/shopspring/decimal"

	"golang-stock-copilot/internal/copilot/dto"
)

var hundred = decimal.NewFromInt(100)

// Renormalize recomputes every position value and weight and the portfolio summary.
// It must run after any change to the position set.
func Renormalize(p *dto.Portfolio) {
	total := decimal.Zero
	values := make([]decimal.Decimal, len(p.Positions))
	for i := range p.Positions {
		pos := &p.Positions[i]
		price := pos.CurrentPrice
		if price <= 0 {
			price = pos.AvgPrice
		}
		values[i] = decimal.NewFromFloat(pos.Shares).Mul(decimal.NewFromFloat(price))
		pos.Value = values[i].InexactFloat64()
		total = total.Add(values[i])
	}

	for i := range p.Positions {
		if total.IsPositive() {
			p.Positions[i].Weight = values[i].Div(total).Mul(hundred).InexactFloat64()
		} else {
			p.Positions[i].Weight = 0
		}
	}
	p.Summary = Summarize(p.Positions)
}

// Summarize totals cost, value and P&L over positions.
func Summarize(positions []dto.Position) dto.PortfolioSummary {
	cost, value, pnl := decimal.Zero, decimal.Zero, decimal.Zero
	for _, pos := range positions {
		shares := decimal.NewFromFloat(pos.Shares)
		cost = cost.Add(shares.Mul(decimal.NewFromFloat(pos.AvgPrice)))
		value = value.Add(decimal.NewFromFloat(pos.Value))
		pnl = pnl.Add(decimal.NewFromFloat(pos.PnL))
	}

	ret := decimal.Zero
	if cost.IsPositive() {
		ret = value.Sub(cost).Div(cost).Mul(hundred)
	}
	return dto.PortfolioSummary{
		TotalCost:      cost.Round(2).InexactFloat64(),
		TotalValue:     value.Round(2).InexactFloat64(),
		TotalPnL:       pnl.Round(2).InexactFloat64(),
		TotalReturnPct: ret.Round(2).InexactFloat64(),
		Positions:      len(positions),
	}
}

// TopPositions returns up to n positions by descending value.
func TopPositions(p *dto.Portfolio, n int) []dto.Position {
	out := make([]dto.Position, len(p.Positions))
	copy(out, p.Positions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Concentration is the largest position weight as a fraction.
func Concentration(p *dto.Portfolio) float64 {
	top := 0.0
	for _, pos := range p.Positions {
		if w := pos.Weight / 100; w > top {
			top = w
		}
	}
	return top
}

// EffectivePositions is the inverse Herfindahl index of the weights, 0 for an empty portfolio.
func EffectivePositions(p *dto.Portfolio) float64 {
	sum := 0.0
	for _, pos := range p.Positions {
		w := pos.Weight / 100
		sum += w * w
	}
	if sum == 0 {
		return 0
	}
	return 1 / sum
}
