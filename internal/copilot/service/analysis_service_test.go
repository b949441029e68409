package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/store"
	"golang-stock-copilot/pkg/logger"
)

type analysisFixture struct {
	svc       AnalysisService
	market    *fakeMarketData
	snapshots *fakeSnapshots
	signals   *fakeSignals
	events    *fakeEvents
	alerts    *fakeAlerts
	store     *store.Store
}

func newAnalysisFixture(sampleSize int) *analysisFixture {
	cfg := testConfig()
	cfg.Analysis.SampleSize = sampleSize
	f := &analysisFixture{
		market:    newFakeMarketData(),
		snapshots: &fakeSnapshots{},
		signals:   &fakeSignals{},
		events:    &fakeEvents{},
		alerts:    &fakeAlerts{},
		store:     store.New(),
	}
	f.svc = NewAnalysisService(cfg, AnalysisDeps{
		MarketData: f.market,
		Snapshots:  f.snapshots,
		Signals:    f.signals,
		Events:     f.events,
		Alerts:     f.alerts,
	}, f.store, logger.NewNop())
	return f
}

func TestRunCycle_SkipsFailuresAndPublishes(t *testing.T) {
	f := newAnalysisFixture(4)
	// First ticker of each of the first four sectors: BTC-USD, AAPL, TDY, WKHS.
	f.market.bars["BTC-USD"] = risingBars(70, 100, 1)
	f.market.bars["AAPL"] = risingBars(70, 200, -1)
	f.market.bars["TDY"] = risingBars(10, 50, 1)

	snap, err := f.svc.RunCycle(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Assets, 2)
	assert.Equal(t, 2, snap.TotalAnalyzed)
	assert.NotEmpty(t, snap.CycleID)
	assert.GreaterOrEqual(t, snap.Assets[0].Score, snap.Assets[1].Score)
	assert.Equal(t, "BTC-USD", snap.Assets[0].Ticker)

	stored, ok := f.store.Snapshot()
	require.True(t, ok)
	assert.Equal(t, snap.CycleID, stored.CycleID)

	require.Len(t, f.snapshots.saved, 1)
	assert.Len(t, f.signals.batches[snap.CycleID], 2)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, 2, f.events.events[0].Skipped)
	assert.Equal(t, 2, f.events.events[0].TotalAnalyzed)

	require.Len(t, f.alerts.batches, 1)
	assert.Len(t, f.alerts.batches[0], 2)
}

func TestRunCycle_EmptyBatchStillPublishes(t *testing.T) {
	f := newAnalysisFixture(3)

	snap, err := f.svc.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Assets)

	_, ok := f.store.Snapshot()
	assert.True(t, ok)
}

func TestRunCycle_Cancelled(t *testing.T) {
	f := newAnalysisFixture(3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.RunCycle(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, ok := f.store.Snapshot()
	assert.False(t, ok)
}

func TestAnalyzeTicker(t *testing.T) {
	f := newAnalysisFixture(1)
	f.market.bars["NVDA"] = risingBars(70, 100, 1)
	f.market.quotes["NVDA"] = 250

	asset, err := f.svc.AnalyzeTicker(context.Background(), " nvda ")
	require.NoError(t, err)
	assert.Equal(t, "NVDA", asset.Ticker)
	assert.Equal(t, 250.0, asset.Price)
	assert.Equal(t, "NVDA Inc.", asset.Name)
	assert.Equal(t, DataSourceLive, asset.DataSource)
	require.NotNil(t, asset.LastUpdated)

	_, err = f.svc.AnalyzeTicker(context.Background(), "NOPE")
	assert.ErrorIs(t, err, dto.ErrTickerNotFound)

	f.market.bars["SHORT"] = risingBars(5, 10, 1)
	_, err = f.svc.AnalyzeTicker(context.Background(), "SHORT")
	assert.ErrorIs(t, err, dto.ErrTickerNotFound)
}

func TestAnalyzeTicker_KeepsCloseWithoutQuote(t *testing.T) {
	f := newAnalysisFixture(1)
	f.market.bars["MSFT"] = risingBars(30, 100, 1)

	asset, err := f.svc.AnalyzeTicker(context.Background(), "MSFT")
	require.NoError(t, err)
	assert.Equal(t, 129.0, asset.Price)
}

func TestChart(t *testing.T) {
	f := newAnalysisFixture(1)
	f.market.bars["AAPL"] = []dto.OHLCV{
		{Timestamp: 1700000000, Open: 100.123, High: 101, Low: 99, Close: 100.5, Volume: 1234.7},
		{Timestamp: 1700086400, Open: 100.5, High: 103, Low: 100, Close: 102.456, Volume: 2000},
	}

	resp, err := f.svc.Chart(context.Background(), "aapl", "1w")
	require.NoError(t, err)
	assert.Equal(t, "5d", f.market.lastRange)
	assert.Equal(t, "AAPL", resp.Ticker)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 100.12, resp.Data[0].Open)
	assert.Equal(t, int64(1234), resp.Data[0].Volume)
	assert.Equal(t, 102.46, resp.CurrentPrice)
	assert.Equal(t, 2.33, resp.Change)

	f.market.quotes["AAPL"] = 110.123
	resp, err = f.svc.Chart(context.Background(), "AAPL", "weird")
	require.NoError(t, err)
	assert.Equal(t, "1mo", f.market.lastRange)
	assert.Equal(t, 110.12, resp.CurrentPrice)
	assert.Equal(t, 10.0, resp.Change)
	assert.InDelta(t, 9.99, resp.ChangePercent, 0.01)

	_, err = f.svc.Chart(context.Background(), "NOPE", "1m")
	assert.ErrorIs(t, err, dto.ErrTickerNotFound)
}

func TestHistory(t *testing.T) {
	f := newAnalysisFixture(2)
	f.market.bars["BTC-USD"] = risingBars(70, 100, 1)

	_, err := f.svc.RunCycle(context.Background())
	require.NoError(t, err)

	rows, err := f.svc.History(context.Background(), "BTC-USD", 10)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
