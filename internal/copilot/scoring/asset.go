package scoring

import (
	"strings"

	"golang-stock-copilot/internal/copilot/calculator"
	"golang-stock-copilot/internal/copilot/dto"
)

const (
	TrendBullish = "Bullish"
	TrendBearish = "Bearish"
)

// AnalyzeAsset scores one ticker from its chronological bars.
// It returns false when the series is too short to produce indicators.
func AnalyzeAsset(ticker string, bars []dto.OHLCV) (*dto.ScoredAsset, bool) {
	ind, ok := calculator.Compute(bars)
	if !ok {
		return nil, false
	}
	ticker = strings.ToUpper(ticker)
	sig := LookupExpertSignal(ticker)
	res := Score(ind, sig)

	trend := TrendBearish
	if ind.Price > ind.SMA20 {
		trend = TrendBullish
	}

	asset := &dto.ScoredAsset{
		Ticker:         ticker,
		Name:           ticker,
		Sector:         SectorOf(ticker),
		Price:          ind.Price,
		Score:          res.Score,
		Recommendation: res.Recommendation,
		Confidence:     res.Confidence,
		RiskLevel:      res.RiskLevel,
		ExpertSignal:   float64(sig.ExpertWeight) * 1.5,
		NumExperts:     sig.NumExperts,
		Experts:        sig.Experts,
		Momentum3M:     ind.Momentum3M,
		Momentum1M:     ind.Momentum1M,
		Momentum1W:     ind.Momentum1W,
		RSI:            ind.RSI,
		VolumeRatio:    ind.VolumeRatio,
		Trend:          trend,
		Reasoning:      res.Reasoning,
		TechnicalIndicators: dto.IndicatorSummary{
			SMA20:      ind.SMA20,
			SMA50:      ind.SMA50,
			RSI:        ind.RSI,
			MACD:       ind.MACD,
			MACDSignal: ind.MACDSignal,
			BBUpper:    ind.BBUpper,
			BBLower:    ind.BBLower,
			BBPosition: ind.BBPosition,
		},
		NewsSentiment: NewsSentiment(ticker, bars),
	}
	return asset, true
}
