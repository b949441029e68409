package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"golang-stock-copilot/internal/copilot/config"
	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/pkg/logger"
	"golang-stock-copilot/pkg/utils"
)

// RefreshScheduler runs analysis cycles on a cron schedule and on demand.
// At most one cycle runs at a time.
type RefreshScheduler interface {
	Start(ctx context.Context)
	TriggerRefresh(ctx context.Context) (*dto.MarketSnapshot, error)
	Running() bool
}

type refreshScheduler struct {
	cfg             *config.Config
	analysis        AnalysisService
	news            NewsService
	logger          *logger.Logger
	schedule        cron.Schedule
	pollingInterval time.Duration
	running         atomic.Bool
}

// NewRefreshScheduler parses the refresh cron expression. news may be nil.
func NewRefreshScheduler(cfg *config.Config, analysis AnalysisService, news NewsService, log *logger.Logger) (RefreshScheduler, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(cfg.Refresh.Cron)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh cron %q: %w", cfg.Refresh.Cron, err)
	}
	polling := cfg.Refresh.PollingInterval
	if polling <= 0 {
		polling = 30 * time.Second
	}
	return &refreshScheduler{
		cfg:             cfg,
		analysis:        analysis,
		news:            news,
		logger:          log,
		schedule:        schedule,
		pollingInterval: polling,
	}, nil
}

// Start blocks until ctx is done. It returns immediately when refresh is disabled.
func (s *refreshScheduler) Start(ctx context.Context) {
	if !s.cfg.Refresh.Enabled {
		s.logger.Info("Background refresh disabled, analysis runs on demand only")
		return
	}
	if s.cfg.Refresh.RunOnStart {
		s.runScheduled(ctx)
	}

	next := s.schedule.Next(utils.Now())
	s.logger.Info("Refresh scheduler started", logger.StringField("cron", s.cfg.Refresh.Cron), logger.Field("next_run", next))

	ticker := time.NewTicker(s.pollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Refresh scheduler stopping")
			return
		case <-ticker.C:
			now := utils.Now()
			if now.Before(next) {
				continue
			}
			s.runScheduled(ctx)
			next = s.schedule.Next(utils.Now())
		}
	}
}

func (s *refreshScheduler) runScheduled(ctx context.Context) {
	if _, err := s.TriggerRefresh(ctx); err != nil {
		if errors.Is(err, dto.ErrRefreshInProgress) {
			s.logger.Warn("Previous refresh still running, skipping this tick")
			return
		}
		s.logger.Error("Scheduled refresh failed", logger.ErrorField(err))
	}
}

// TriggerRefresh runs one cycle now. It fails with dto.ErrRefreshInProgress when a cycle is already running.
func (s *refreshScheduler) TriggerRefresh(ctx context.Context) (*dto.MarketSnapshot, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, dto.ErrRefreshInProgress
	}
	defer s.running.Store(false)

	snapshot, err := s.analysis.RunCycle(ctx)
	if err != nil {
		return nil, err
	}
	if s.news != nil {
		if _, err := s.news.Refresh(ctx); err != nil {
			s.logger.Warn("News refresh failed", logger.ErrorField(err))
		}
	}
	return snapshot, nil
}

func (s *refreshScheduler) Running() bool {
	return s.running.Load()
}
