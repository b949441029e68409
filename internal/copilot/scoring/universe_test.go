package scoring

import (
	"testing"

	"golang-stock-copilot/internal/copilot/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTickers_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for _, tk := range AllTickers() {
		assert.False(t, seen[tk], "duplicate %s", tk)
		seen[tk] = true
	}
	assert.Equal(t, len(seen), TotalUniverse())
}

func TestSectorLabel(t *testing.T) {
	assert.Equal(t, "Us/Large/Cap", SectorLabel("us_large_cap", "/"))
	assert.Equal(t, "Us Large Cap", SectorLabel("us_large_cap", " "))
	assert.Equal(t, "Crypto", SectorOf("BTC-USD"))
	assert.Equal(t, OtherSector, SectorOf("NOPE"))
}

func TestSample_CoversEverySector(t *testing.T) {
	got := Sample(len(universe))
	require.Len(t, got, len(universe))
	for i, s := range universe {
		assert.Equal(t, s.tickers[0], got[i])
	}
	assert.Equal(t, TotalUniverse(), len(Sample(0)))
}

func TestSearch(t *testing.T) {
	res := Search("btc", 20)
	require.NotEmpty(t, res)
	assert.Equal(t, dto.SearchResult{Ticker: "BTC-USD", Sector: "Crypto"}, res[0])

	assert.Len(t, Search("A", 20), 20)
	assert.Empty(t, Search("  ", 20))
}

func TestExperts(t *testing.T) {
	assert.Equal(t, []string{"Cathie Wood (ARK)", "Crypto Whales"}, ExpertsHolding("BTC-USD"))
	assert.Equal(t, 16, ExpertWeight("BTC-USD"))
	assert.Equal(t, 0, ExpertWeight("ZZZZ"))

	sig := LookupExpertSignal("v")
	assert.Equal(t, 3, sig.NumExperts)
	assert.Equal(t, 30, sig.ExpertWeight)
}

func TestNewsSentiment(t *testing.T) {
	flat := risingBars(10)
	for i := range flat {
		flat[i].Close = 100
	}
	s := NewsSentiment("KO", flat)
	assert.Equal(t, SentimentNeutral, s.Sentiment)
	assert.Equal(t, 0.1, s.Score)
	assert.Equal(t, "medium", s.Confidence)

	bars := risingBars(10)
	bars[5].Close = 100
	bars[9].Close = 110
	bars[9].Volume = 3000
	s = NewsSentiment("KO", bars)
	assert.Equal(t, SentimentPositive, s.Sentiment)
	assert.Equal(t, 0.84, s.Score)
	assert.Equal(t, "high", s.Confidence)
	assert.True(t, s.VolumeSurge)
	assert.Equal(t, "KO Shows Strong Momentum with 10.0% Gain", s.Headlines[0])
}
