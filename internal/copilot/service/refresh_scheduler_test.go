package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/store"
	"golang-stock-copilot/pkg/logger"
)

func TestNewRefreshScheduler_InvalidCron(t *testing.T) {
	cfg := testConfig()
	cfg.Refresh.Cron = "not a cron"
	_, err := NewRefreshScheduler(cfg, nil, nil, logger.NewNop())
	assert.Error(t, err)
}

func TestTriggerRefresh_RefusesOverlap(t *testing.T) {
	f := newAnalysisFixture(1)
	f.market.block = make(chan struct{})
	f.market.bars["BTC-USD"] = risingBars(70, 100, 1)

	sched, err := NewRefreshScheduler(testConfig(), f.svc, nil, logger.NewNop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := sched.TriggerRefresh(context.Background())
		done <- err
	}()
	require.Eventually(t, sched.Running, time.Second, 5*time.Millisecond)

	_, err = sched.TriggerRefresh(context.Background())
	assert.ErrorIs(t, err, dto.ErrRefreshInProgress)

	close(f.market.block)
	require.NoError(t, <-done)
	assert.False(t, sched.Running())

	snap, err := sched.TriggerRefresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Assets, 1)
}

func TestTriggerRefresh_RefreshesNews(t *testing.T) {
	f := newAnalysisFixture(1)
	cfg := testConfig()
	st := store.New()
	news := NewNewsService(cfg, &fakeNews{}, st, logger.NewNop())

	sched, err := NewRefreshScheduler(cfg, f.svc, news, logger.NewNop())
	require.NoError(t, err)

	_, err = sched.TriggerRefresh(context.Background())
	require.NoError(t, err)

	items, _ := st.News()
	assert.Len(t, items, len(FallbackNews(time.Now())))
}

func TestStart_DisabledReturnsImmediately(t *testing.T) {
	cfg := testConfig()
	cfg.Refresh.Enabled = false
	sched, err := NewRefreshScheduler(cfg, nil, nil, logger.NewNop())
	require.NoError(t, err)

	finished := make(chan struct{})
	go func() {
		sched.Start(context.Background())
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Start did not return")
	}
}

func TestStart_RunOnStartAndStop(t *testing.T) {
	f := newAnalysisFixture(1)
	f.market.bars["BTC-USD"] = risingBars(70, 100, 1)
	cfg := testConfig()
	cfg.Refresh.Enabled = true
	cfg.Refresh.RunOnStart = true
	cfg.Refresh.PollingInterval = 10 * time.Millisecond

	sched, err := NewRefreshScheduler(cfg, f.svc, nil, logger.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})
	go func() {
		sched.Start(ctx)
		close(finished)
	}()

	require.Eventually(t, func() bool {
		_, ok := f.store.Snapshot()
		return ok
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Start did not stop on cancel")
	}
}
