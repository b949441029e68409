package portfolio

import (
	"strings"
	"testing"

	"golang-stock-copilot/internal/copilot/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport_AliasesAreEquivalent(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			name: "trading212",
			csv:  "Instrument,Quantity,Average price,Current price,P&L\nAAPL,10,150,160,100\nMSFT,5,300,310,50\n",
		},
		{
			name: "generic",
			csv:  "symbol , shares,AVG PRICE,Market Price,Profit/Loss\naapl,10,150,160,100\nmsft,5,300,310,50\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Import(strings.NewReader(tt.csv))
			require.NoError(t, err)
			require.Len(t, p.Positions, 2)

			assert.Equal(t, "AAPL", p.Positions[0].Ticker)
			assert.Equal(t, 10.0, p.Positions[0].Shares)
			assert.Equal(t, 150.0, p.Positions[0].AvgPrice)
			assert.Equal(t, 160.0, p.Positions[0].CurrentPrice)
			assert.Equal(t, 1600.0, p.Positions[0].Value)
			assert.Equal(t, 1550.0, p.Positions[1].Value)
			assert.Equal(t, 0, p.SkippedRows)
			assert.Equal(t, SourceTrading212, p.Source)
		})
	}
}

func TestImport_SkipsInvalidRows(t *testing.T) {
	csv := "Ticker,Quantity,Avg Price\nAAPL,abc,150\n,3,10\nKO,2,\nTSLA,\"1,000\",$200.50\n"

	p, err := Import(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, p.Positions, 1)
	assert.Equal(t, 3, p.SkippedRows)
	assert.Equal(t, "TSLA", p.Positions[0].Ticker)
	assert.Equal(t, 1000.0, p.Positions[0].Shares)
	assert.Equal(t, 200.5, p.Positions[0].AvgPrice)
	assert.Equal(t, 200500.0, p.Positions[0].Value)
	assert.Equal(t, 100.0, p.Positions[0].Weight)
}

func TestImport_EmptyInput(t *testing.T) {
	_, err := Import(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyCSV)
}

func TestRenormalize_WeightsSumTo100(t *testing.T) {
	p := &dto.Portfolio{Positions: []dto.Position{
		{Ticker: "A", Shares: 1, AvgPrice: 10},
		{Ticker: "B", Shares: 3, AvgPrice: 10, CurrentPrice: 20},
		{Ticker: "C", Shares: 7, AvgPrice: 3},
	}}
	Renormalize(p)

	sum := 0.0
	for _, pos := range p.Positions {
		sum += pos.Weight
	}
	assert.InDelta(t, 100, sum, 1e-9)
	assert.Equal(t, 91.0, p.Summary.TotalValue)
	assert.Equal(t, 61.0, p.Summary.TotalCost)
	assert.Equal(t, 3, p.Summary.Positions)

	p.Positions = p.Positions[:1]
	Renormalize(p)
	assert.Equal(t, 100.0, p.Positions[0].Weight)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]dto.Position{
		{Shares: 10, AvgPrice: 100, Value: 1100, PnL: 100},
		{Shares: 5, AvgPrice: 20, Value: 90, PnL: -10},
	})
	assert.Equal(t, 1100.0, s.TotalCost)
	assert.Equal(t, 1190.0, s.TotalValue)
	assert.Equal(t, 90.0, s.TotalPnL)
	assert.Equal(t, 8.18, s.TotalReturnPct)

	assert.Equal(t, 0.0, Summarize(nil).TotalReturnPct)
}

func TestConcentrationAndEffectivePositions(t *testing.T) {
	p := &dto.Portfolio{Positions: []dto.Position{
		{Ticker: "A", Weight: 50},
		{Ticker: "B", Weight: 25},
		{Ticker: "C", Weight: 25},
	}}
	assert.Equal(t, 0.5, Concentration(p))
	assert.InDelta(t, 1/0.375, EffectivePositions(p), 1e-9)
	assert.Equal(t, 0.0, EffectivePositions(&dto.Portfolio{}))
}

func TestTopPositions(t *testing.T) {
	p := &dto.Portfolio{Positions: []dto.Position{
		{Ticker: "A", Value: 10},
		{Ticker: "B", Value: 30},
		{Ticker: "C", Value: 20},
	}}
	top := TopPositions(p, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Ticker)
	assert.Equal(t, "C", top[1].Ticker)
	assert.Equal(t, "A", p.Positions[0].Ticker)
}

func TestParseNumber(t *testing.T) {
	tests := map[string]float64{
		"1,234.50": 1234.5,
		"$12":      12,
		"€ 7.25":   7.25,
		"(3.5)":    -3.5,
		"-2":       -2,
	}
	for in, want := range tests {
		got, err := ParseNumber(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseNumber("abc")
	assert.Error(t, err)
}
