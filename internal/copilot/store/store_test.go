package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-copilot/internal/copilot/dto"
)

func TestStore_Snapshot(t *testing.T) {
	s := New()
	_, ok := s.Snapshot()
	assert.False(t, ok)
	assert.Nil(t, s.Assets())

	s.SetSnapshot(dto.MarketSnapshot{Assets: []dto.ScoredAsset{{Ticker: "AAPL"}}, TotalAnalyzed: 1})
	snap, ok := s.Snapshot()
	require.True(t, ok)
	snap.Assets[0].Ticker = "MUTATED"

	assert.Equal(t, "AAPL", s.Assets()[0].Ticker, "callers get copies")
}

func TestStore_AlertIDsAreMonotonic(t *testing.T) {
	s := New()
	a := s.AddAlert(dto.Alert{Ticker: "AAPL"})
	b := s.AddAlert(dto.Alert{Ticker: "MSFT"})
	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)

	require.NoError(t, s.DeleteAlert(a.ID))
	c := s.AddAlert(dto.Alert{Ticker: "NVDA"})
	assert.Equal(t, 3, c.ID, "ids are never reused")

	assert.ErrorIs(t, s.DeleteAlert(42), dto.ErrAlertNotFound)

	c.Active = false
	assert.True(t, s.UpdateAlert(c))
	assert.False(t, s.UpdateAlert(dto.Alert{ID: 99}))
	assert.Len(t, s.Alerts(), 2)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.AddAlert(dto.Alert{Ticker: "AAPL"})
			s.SetNews([]dto.NewsItem{{Title: "x"}}, time.Now())
		}()
		go func() {
			defer wg.Done()
			_ = s.Alerts()
			_, _ = s.News()
			_ = s.Portfolio()
		}()
	}
	wg.Wait()
	assert.Len(t, s.Alerts(), 50)
}

func TestStore_Portfolio(t *testing.T) {
	s := New()
	s.SetPortfolio(dto.Portfolio{Positions: []dto.Position{{Ticker: "AAPL", Shares: 1}}})
	p := s.Portfolio()
	p.Positions[0].Shares = 99
	assert.Equal(t, 1.0, s.Portfolio().Positions[0].Shares)
}
