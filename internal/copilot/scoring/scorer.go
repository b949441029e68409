package scoring

import (
	"fmt"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/pkg/utils"
)

// Recommendations, strongest first.
const (
	StrongBuy    = "STRONG BUY"
	Buy          = "BUY"
	ModerateBuy  = "MODERATE BUY"
	Hold         = "HOLD"
	ModerateSell = "MODERATE SELL"
	Sell         = "SELL"
	StrongSell   = "STRONG SELL"
)

type tier struct {
	min            float64
	recommendation string
	confidence     string
	risk           string
}

// tiers is ordered by descending min; the last entry covers every remaining score.
var tiers = []tier{
	{75, StrongBuy, "High", "Medium"},
	{65, Buy, "Medium-High", "Medium"},
	{50, ModerateBuy, "Medium", "Medium"},
	{40, Hold, "Medium", "Medium"},
	{30, ModerateSell, "Medium", "High"},
	{20, Sell, "Medium-High", "High"},
	{0, StrongSell, "High", "Very High"},
}

func tierFor(score float64) tier {
	for _, t := range tiers {
		if score >= t.min {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// Score combines expert holdings with the technical picture into a 0-100 score,
// a recommendation tier and the reasoning lines that produced it.
func Score(ind dto.TechnicalIndicators, sig dto.ExpertSignal) dto.SignalResult {
	score := float64(sig.ExpertWeight * 4)
	reasoning := make([]string, 0, 8)
	if sig.NumExperts > 0 {
		reasoning = append(reasoning, fmt.Sprintf("+ %d top investors holding", sig.NumExperts))
	}

	switch mom := ind.Momentum3M; {
	case mom > 15:
		score += 25
		reasoning = append(reasoning, fmt.Sprintf("+ Strong momentum: +%.1f%% (3M)", mom))
	case mom > 5:
		score += 15
		reasoning = append(reasoning, fmt.Sprintf("+ Positive momentum: +%.1f%% (3M)", mom))
	case mom < -15:
		score -= 10
		reasoning = append(reasoning, fmt.Sprintf("- Weak momentum: %.1f%% (3M)", mom))
	}

	if ind.Price > ind.SMA20 && ind.SMA20 > ind.SMA50 {
		score += 10
		reasoning = append(reasoning, "+ Bullish trend (Price > MA20 > MA50)")
	} else if ind.Price < ind.SMA20 {
		score -= 5
		reasoning = append(reasoning, "- Bearish trend")
	}

	switch rsi := ind.RSI; {
	case rsi > 40 && rsi < 60:
		score += 5
		reasoning = append(reasoning, fmt.Sprintf("+ Neutral RSI: %.0f", rsi))
	case rsi < 30:
		score += 8
		reasoning = append(reasoning, fmt.Sprintf("+ Oversold RSI: %.0f (potential reversal)", rsi))
	case rsi > 70:
		score -= 5
		reasoning = append(reasoning, fmt.Sprintf("! Overbought RSI: %.0f (caution)", rsi))
	}

	if ind.MACD > ind.MACDSignal {
		score += 5
		reasoning = append(reasoning, "+ Bullish MACD crossover")
	}

	if ind.VolumeRatio > 1.5 {
		score += 10
		reasoning = append(reasoning, "+ High volume surge")
	} else if ind.VolumeRatio > 1.2 {
		score += 5
	}

	score = utils.Clamp(score, 0, 100)
	t := tierFor(score)

	if ind.BBPosition < 0.2 {
		reasoning = append(reasoning, "+ Near lower Bollinger Band (potential support)")
	} else if ind.BBPosition > 0.8 {
		reasoning = append(reasoning, "! Near upper Bollinger Band (potential resistance)")
	}

	return dto.SignalResult{
		Score:          score,
		Recommendation: t.recommendation,
		Confidence:     t.confidence,
		RiskLevel:      t.risk,
		Reasoning:      reasoning,
	}
}

// IsBuy reports whether a recommendation is one of the buy tiers.
func IsBuy(recommendation string) bool {
	return recommendation == StrongBuy || recommendation == Buy || recommendation == ModerateBuy
}
