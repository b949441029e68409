package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-copilot/internal/copilot/dto"
)

func TestSnapshot_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals", "live_trading_signals.json")
	repo := NewSnapshotRepository(path)

	_, err := repo.Load()
	assert.ErrorIs(t, err, dto.ErrNoMarketData)

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, repo.Save(&dto.MarketSnapshot{
		Timestamp:     ts,
		Assets:        []dto.ScoredAsset{{Ticker: "AAPL", Score: 80}},
		TotalAnalyzed: 1,
	}))
	require.NoError(t, repo.Save(&dto.MarketSnapshot{
		Timestamp:     ts.Add(time.Minute),
		Assets:        []dto.ScoredAsset{{Ticker: "MSFT", Score: 70}, {Ticker: "NVDA", Score: 60}},
		TotalAnalyzed: 2,
	}))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalAnalyzed)
	require.Len(t, got.Assets, 2)
	assert.Equal(t, "MSFT", got.Assets[0].Ticker)
	assert.True(t, got.Timestamp.Equal(ts.Add(time.Minute)))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestSnapshot_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewSnapshotRepository(path).Load()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, dto.ErrNoMarketData)
}
