package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/scoring"
	"golang-stock-copilot/internal/copilot/store"
	"golang-stock-copilot/pkg/logger"
)

func newMarketFixture() (MarketService, AlertService, *store.Store) {
	st := store.New()
	alerts := NewAlertService(testConfig(), st, nil, nil, logger.NewNop())
	return NewMarketService(st, alerts), alerts, st
}

func TestMarketService_EmptyStore(t *testing.T) {
	svc, _, _ := newMarketFixture()

	_, err := svc.Snapshot()
	assert.ErrorIs(t, err, dto.ErrNoMarketData)
	_, err = svc.Stats()
	assert.ErrorIs(t, err, dto.ErrNoMarketData)

	urgent := svc.UrgentSignals(85)
	assert.NotNil(t, urgent.Signals)
	assert.Zero(t, urgent.Count)
}

func TestMarketService_Stats(t *testing.T) {
	svc, alerts, st := newMarketFixture()
	ts := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	st.SetSnapshot(dto.MarketSnapshot{
		Timestamp: ts,
		Assets: []dto.ScoredAsset{
			{Ticker: "NVDA", Score: 90, Recommendation: scoring.StrongBuy},
			{Ticker: "AAPL", Score: 70, Recommendation: scoring.Buy},
			{Ticker: "MSFT", Score: 60, Recommendation: scoring.ModerateBuy},
			{Ticker: "KO", Score: 50, Recommendation: scoring.Hold},
			{Ticker: "TSLA", Score: 20, Recommendation: scoring.StrongSell},
		},
	})
	alerts.Create(dto.CreateAlertRequest{Ticker: "nvda", Type: "price_above", Threshold: 100})
	a := alerts.Create(dto.CreateAlertRequest{Ticker: "aapl", Type: "price_below", Threshold: 100})
	require.NoError(t, alerts.Delete(a.ID))

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalAssets)
	assert.Equal(t, scoring.TotalUniverse(), stats.TotalUniverse)
	assert.Equal(t, 1, stats.StrongBuys)
	assert.Equal(t, 3, stats.Buys)
	assert.Equal(t, 1, stats.Sells)
	assert.Equal(t, 1, stats.ActiveAlerts)
	assert.Equal(t, ts, stats.LastUpdate)

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Assets, 5)
}

func TestMarketService_UrgentSignals(t *testing.T) {
	svc, _, st := newMarketFixture()
	st.SetSnapshot(dto.MarketSnapshot{Assets: []dto.ScoredAsset{
		{Ticker: "AAPL", Score: 86},
		{Ticker: "NVDA", Score: 92},
		{Ticker: "KO", Score: 40},
	}})

	resp := svc.UrgentSignals(85)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "NVDA", resp.Signals[0].Ticker)
	assert.Equal(t, "AAPL", resp.Signals[1].Ticker)
}

func TestMarketService_Search(t *testing.T) {
	svc, _, _ := newMarketFixture()

	resp := svc.Search("  nvd ")
	assert.Equal(t, "NVD", resp.Query)
	require.NotEmpty(t, resp.Assets)
	assert.Equal(t, "NVDA", resp.Assets[0].Ticker)

	empty := svc.Search("")
	assert.NotNil(t, empty.Assets)
	assert.Empty(t, empty.Assets)

	many := svc.Search("A")
	assert.LessOrEqual(t, len(many.Assets), searchLimit)
}
