package scoring

import (
	"testing"

	"golang-stock-copilot/internal/copilot/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func risingBars(n int) []dto.OHLCV {
	bars := make([]dto.OHLCV, n)
	for i := range bars {
		c := 100 + float64(i)
		bars[i] = dto.OHLCV{
			Timestamp: int64(1700000000 + i*86400),
			Open:      c,
			High:      c,
			Low:       c,
			Close:     c,
			Volume:    1000,
		}
	}
	return bars
}

func TestScore_BullishReasoningOrder(t *testing.T) {
	ind := dto.TechnicalIndicators{
		Price:       110,
		SMA20:       105,
		SMA50:       100,
		RSI:         50,
		MACD:        1,
		MACDSignal:  0.5,
		VolumeRatio: 1.6,
		Momentum3M:  20,
		BBPosition:  0.9,
	}
	sig := dto.ExpertSignal{Experts: []string{"a", "b"}, NumExperts: 2, ExpertWeight: 20}

	res := Score(ind, sig)

	assert.Equal(t, 100.0, res.Score)
	assert.Equal(t, StrongBuy, res.Recommendation)
	assert.Equal(t, "High", res.Confidence)
	assert.Equal(t, "Medium", res.RiskLevel)
	assert.Equal(t, []string{
		"+ 2 top investors holding",
		"+ Strong momentum: +20.0% (3M)",
		"+ Bullish trend (Price > MA20 > MA50)",
		"+ Neutral RSI: 50",
		"+ Bullish MACD crossover",
		"+ High volume surge",
		"! Near upper Bollinger Band (potential resistance)",
	}, res.Reasoning)
}

func TestScore_BearishClampsAtZero(t *testing.T) {
	ind := dto.TechnicalIndicators{
		Price:       90,
		SMA20:       100,
		SMA50:       95,
		RSI:         75,
		MACD:        -1,
		MACDSignal:  0,
		VolumeRatio: 1.3,
		Momentum3M:  -20,
		BBPosition:  0.1,
	}

	res := Score(ind, dto.ExpertSignal{})

	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, StrongSell, res.Recommendation)
	assert.Equal(t, "Very High", res.RiskLevel)
	assert.Equal(t, []string{
		"- Weak momentum: -20.0% (3M)",
		"- Bearish trend",
		"! Overbought RSI: 75 (caution)",
		"+ Near lower Bollinger Band (potential support)",
	}, res.Reasoning)
}

func TestScore_ClampsLargeExpertWeight(t *testing.T) {
	res := Score(dto.TechnicalIndicators{RSI: 50, BBPosition: 0.5}, dto.ExpertSignal{NumExperts: 10, ExpertWeight: 100})
	assert.Equal(t, 100.0, res.Score)
	assert.Equal(t, StrongBuy, res.Recommendation)
}

func TestScore_ModerateVolumeAddsNoReasoning(t *testing.T) {
	ind := dto.TechnicalIndicators{Price: 100, SMA20: 100, SMA50: 100, RSI: 65, VolumeRatio: 1.3, BBPosition: 0.5}
	res := Score(ind, dto.ExpertSignal{ExpertWeight: 10, NumExperts: 1})

	assert.Equal(t, 45.0, res.Score)
	assert.Equal(t, Hold, res.Recommendation)
	assert.Equal(t, []string{"+ 1 top investors holding"}, res.Reasoning)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, StrongBuy},
		{75, StrongBuy},
		{74.9, Buy},
		{65, Buy},
		{50, ModerateBuy},
		{40, Hold},
		{30, ModerateSell},
		{20, Sell},
		{19.9, StrongSell},
		{0, StrongSell},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tierFor(tt.score).recommendation, "score %v", tt.score)
	}

	for s := 0; s <= 100; s++ {
		tr := tierFor(float64(s))
		assert.NotEmpty(t, tr.recommendation)
		assert.NotEmpty(t, tr.confidence)
		assert.NotEmpty(t, tr.risk)
	}
}

func TestAnalyzeAsset(t *testing.T) {
	_, ok := AnalyzeAsset("AAPL", risingBars(19))
	assert.False(t, ok)

	asset, ok := AnalyzeAsset("aapl", risingBars(70))
	require.True(t, ok)

	assert.Equal(t, "AAPL", asset.Ticker)
	assert.Equal(t, "AAPL", asset.Name)
	assert.Equal(t, "Us/Large/Cap", asset.Sector)
	assert.Equal(t, 169.0, asset.Price)
	assert.Equal(t, []string{"Warren Buffett", "BlackRock", "Vanguard"}, asset.Experts)
	assert.Equal(t, 3, asset.NumExperts)
	assert.Equal(t, 45.0, asset.ExpertSignal)
	assert.Equal(t, TrendBullish, asset.Trend)
	assert.Equal(t, 100.0, asset.Score)
	assert.Equal(t, asset.RSI, asset.TechnicalIndicators.RSI)
	require.NotNil(t, asset.NewsSentiment)
}

func TestAnalyzeAsset_UnknownSector(t *testing.T) {
	asset, ok := AnalyzeAsset("ZZZZ", risingBars(30))
	require.True(t, ok)
	assert.Equal(t, OtherSector, asset.Sector)
	assert.Empty(t, asset.Experts)
}
