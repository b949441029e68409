package ranking

import (
	"testing"

	"golang-stock-copilot/internal/copilot/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_GoldenVector(t *testing.T) {
	a := dto.ScoredAsset{
		Ticker:      "NVDA",
		Sector:      "technology",
		Price:       100,
		Score:       80,
		Momentum3M:  20,
		RSI:         55,
		VolumeRatio: 1.6,
		Experts:     []string{"BlackRock", "Vanguard"},
	}

	opp := Evaluate(a)

	assert.Equal(t, "NVIDIA Corporation", opp.Name)
	assert.InDelta(t, 0.95, opp.ProfitProbability, 1e-9)
	assert.InDelta(t, 0.3168, opp.ProfitTarget, 1e-9)
	assert.InDelta(t, 0.20, opp.RiskLevel, 1e-9)
	assert.InDelta(t, 0.270864, opp.ProfitScore, 1e-9)
	assert.InDelta(t, 98, opp.EntryPrice, 1e-9)
	assert.InDelta(t, 85.26, opp.StopLoss, 1e-9)
	assert.InDelta(t, 0.12, opp.PositionSize, 1e-9)
	assert.InDelta(t, 31.68, opp.ExpectedReturn, 1e-9)
	assert.Equal(t, "3-4 months", opp.Timeline)
	assert.Equal(t, "Very High", opp.Confidence)

	assert.Equal(t, []string{
		"Strong overall fundamentals and technical setup",
		"Strong momentum (+20.0% in 3 months)",
		"Held by top investors: BlackRock, Vanguard",
		"Technical indicators in favorable range",
		"High volume indicates strong interest",
	}, opp.WhyThisWorks)
	assert.Empty(t, opp.RiskFactors)
	assert.Equal(t, "Strong uptrend with healthy momentum", opp.TechnicalAnalysis)
	assert.Equal(t, "Moderate institutional interest from 2 investors", opp.InstitutionalActivity)
	assert.Equal(t, "Technology sector showing strong growth momentum", opp.SectorOutlook)
}

func qualifying(ticker string, score float64) dto.ScoredAsset {
	return dto.ScoredAsset{
		Ticker:      ticker,
		Sector:      "Us/Large/Cap",
		Price:       50,
		Score:       score,
		Momentum3M:  10,
		RSI:         50,
		VolumeRatio: 1,
		Experts:     []string{"Vanguard"},
	}
}

func TestRank_FiltersSortsAndLimits(t *testing.T) {
	assets := []dto.ScoredAsset{
		qualifying("AAA", 85),
		qualifying("BBB", 95),
		{Ticker: "WEAK", Sector: "Us/Small/Cap", Price: 5, Score: 40, RSI: 50, VolumeRatio: 1},
		qualifying("CCC", 90),
		qualifying("DDD", 88),
		{Sector: "Us/Large/Cap", Score: 99},
	}

	got := Rank(assets, DefaultCriteria())

	require.Len(t, got, 3)
	assert.Equal(t, []string{"BBB", "CCC", "DDD"}, []string{got[0].Ticker, got[1].Ticker, got[2].Ticker})
	for _, opp := range got {
		assert.GreaterOrEqual(t, opp.ProfitProbability, 0.75)
		assert.GreaterOrEqual(t, opp.ProfitTarget, 0.15)
		assert.LessOrEqual(t, opp.RiskLevel, 0.20)
		assert.Equal(t, "Large Cap", opp.MarketCap)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	got := Rank([]dto.ScoredAsset{qualifying("FIRST", 90), qualifying("SECOND", 90)}, DefaultCriteria())
	require.Len(t, got, 2)
	assert.Equal(t, "FIRST", got[0].Ticker)
	assert.Equal(t, "SECOND", got[1].Ticker)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil, DefaultCriteria()))
}

func TestRiskAndTargetBounds(t *testing.T) {
	crypto := dto.ScoredAsset{Ticker: "X-USD", Sector: "Crypto", Score: 0, Momentum3M: -80, RSI: 90}
	assert.Equal(t, 0.4, RiskLevel(crypto))
	assert.Equal(t, 0.10, ProfitTarget(crypto))
	assert.Equal(t, 0.5, ProfitProbability(crypto))
	assert.Equal(t, "6-12 months", Timeline(crypto))

	opp := Evaluate(crypto)
	assert.Equal(t, []string{
		"Moderate fundamental concerns",
		"High momentum may indicate overextension",
		"Overbought technical conditions",
		"Cryptocurrency high volatility risk",
	}, opp.RiskFactors)
	assert.Equal(t, "Downtrend, wait for reversal signals", opp.TechnicalAnalysis)
	assert.Equal(t, "Medium", opp.Confidence)
}

func TestDefaultOpportunities(t *testing.T) {
	opps := DefaultOpportunities()
	require.Len(t, opps, 3)
	assert.Equal(t, "NVDA", opps[0].Ticker)
	assert.Equal(t, "Technology", opps[2].Sector)
	assert.InDelta(t, 22.0, opps[1].ExpectedReturn, 1e-9)
}
