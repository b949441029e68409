package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"golang-stock-copilot/internal/copilot/config"
	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/repository"
	"golang-stock-copilot/internal/copilot/scoring"
	"golang-stock-copilot/internal/copilot/store"
	"golang-stock-copilot/pkg/logger"
	"golang-stock-copilot/pkg/utils"
)

// DataSourceLive marks assets and charts built from a live quote.
const DataSourceLive = "yahoo_finance_live"

var chartRanges = map[string]string{
	"1d": "1d",
	"1w": "5d",
	"1m": "1mo",
	"3m": "3mo",
	"6m": "6mo",
	"1y": "1y",
}

// AnalysisService runs analysis cycles and per-ticker lookups.
type AnalysisService interface {
	RunCycle(ctx context.Context) (*dto.MarketSnapshot, error)
	AnalyzeTicker(ctx context.Context, ticker string) (*dto.ScoredAsset, error)
	Chart(ctx context.Context, ticker, timeframe string) (*dto.ChartResponse, error)
	History(ctx context.Context, ticker string, limit int) ([]dto.SignalHistory, error)
}

// AlertEvaluator is notified with every published batch.
type AlertEvaluator interface {
	Evaluate(ctx context.Context, assets []dto.ScoredAsset) []dto.TriggeredAlert
}

// AnalysisDeps groups the collaborators of the analysis service. Optional ones may be nil.
type AnalysisDeps struct {
	MarketData repository.MarketDataRepository
	Snapshots  repository.SnapshotRepository
	Signals    repository.AssetSignalRepository
	Events     repository.CycleEventRepository
	Alerts     AlertEvaluator
}

type analysisService struct {
	cfg    *config.Config
	deps   AnalysisDeps
	store  *store.Store
	logger *logger.Logger
}

func NewAnalysisService(cfg *config.Config, deps AnalysisDeps, st *store.Store, log *logger.Logger) AnalysisService {
	return &analysisService{cfg: cfg, deps: deps, store: st, logger: log}
}

// RunCycle analyses the configured sample of the universe and publishes the batch.
// Tickers that fail to fetch or score are skipped.
func (s *analysisService) RunCycle(ctx context.Context) (*dto.MarketSnapshot, error) {
	cycleID := uuid.NewString()
	ctx = logger.WithCycleID(ctx, cycleID)
	start := time.Now()

	tickers := scoring.Sample(s.cfg.Analysis.SampleSize)
	s.logger.InfoContext(ctx, "Analysis cycle started", logger.IntField("tickers", len(tickers)))

	assets := make([]dto.ScoredAsset, 0, len(tickers))
	skipped := 0
	for _, ticker := range tickers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		asset, err := s.scoreTicker(ctx, ticker)
		if err != nil {
			skipped++
			s.logger.DebugContext(ctx, "Skipping ticker", logger.StringField("ticker", ticker), logger.ErrorField(err))
			continue
		}
		assets = append(assets, *asset)
	}

	sort.SliceStable(assets, func(i, j int) bool { return assets[i].Score > assets[j].Score })

	now := utils.Now()
	snapshot := dto.MarketSnapshot{
		CycleID:       cycleID,
		Timestamp:     now,
		Assets:        assets,
		TotalAnalyzed: len(assets),
		TotalUniverse: scoring.TotalUniverse(),
	}
	s.store.SetSnapshot(snapshot)

	if s.deps.Snapshots != nil {
		if err := s.deps.Snapshots.Save(&snapshot); err != nil {
			s.logger.ErrorContext(ctx, "Failed to write snapshot", logger.ErrorField(err))
		}
	}
	if s.deps.Signals != nil {
		if err := s.deps.Signals.CreateBatch(ctx, cycleID, assets); err != nil {
			s.logger.ErrorContext(ctx, "Failed to persist signal history", logger.ErrorField(err))
		}
	}
	if s.deps.Events != nil {
		event := dto.CycleEvent{
			CycleID:       cycleID,
			Timestamp:     now,
			TotalAnalyzed: len(assets),
			Skipped:       skipped,
			StrongBuys:    strongBuys(assets),
			Duration:      time.Since(start).Round(time.Millisecond).String(),
		}
		if err := s.deps.Events.Publish(ctx, event); err != nil {
			s.logger.ErrorContext(ctx, "Failed to publish cycle event", logger.ErrorField(err))
		}
	}
	if s.deps.Alerts != nil {
		s.deps.Alerts.Evaluate(ctx, assets)
	}

	s.logger.InfoContext(ctx, "Analysis cycle completed",
		logger.IntField("analyzed", len(assets)),
		logger.IntField("skipped", skipped),
		logger.DurationField("duration", time.Since(start)))

	return &snapshot, nil
}

func (s *analysisService) scoreTicker(ctx context.Context, ticker string) (*dto.ScoredAsset, error) {
	data, err := s.deps.MarketData.GetHistory(ctx, dto.GetHistoryParam{
		Ticker:   ticker,
		Range:    s.cfg.Analysis.Range,
		Interval: s.cfg.Analysis.Interval,
	})
	if err != nil {
		return nil, err
	}
	asset, ok := scoring.AnalyzeAsset(ticker, data.OHLCV)
	if !ok {
		return nil, fmt.Errorf("%s: %w", ticker, dto.ErrInsufficientData)
	}
	return asset, nil
}

// AnalyzeTicker scores one ticker on demand and overrides its price with the live quote.
func (s *analysisService) AnalyzeTicker(ctx context.Context, ticker string) (*dto.ScoredAsset, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, dto.ErrTickerNotFound
	}

	asset, err := s.scoreTicker(ctx, ticker)
	if err != nil {
		if errors.Is(err, dto.ErrNoMarketData) || errors.Is(err, dto.ErrInsufficientData) {
			return nil, fmt.Errorf("%w: %v", dto.ErrTickerNotFound, err)
		}
		return nil, err
	}

	if price, name, ok := s.livePrice(ctx, ticker); ok {
		asset.Price = price
		if name != "" {
			asset.Name = name
		}
	}
	asset.LastUpdated = utils.ToPointer(utils.Now())
	asset.DataSource = DataSourceLive
	return asset, nil
}

// Chart returns display bars for a timeframe (1d, 1w, 1m, 3m, 6m, 1y; anything else is 1m).
func (s *analysisService) Chart(ctx context.Context, ticker, timeframe string) (*dto.ChartResponse, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	rng, ok := chartRanges[timeframe]
	if !ok {
		rng = "1mo"
	}

	data, err := s.deps.MarketData.GetHistory(ctx, dto.GetHistoryParam{Ticker: ticker, Range: rng, Interval: "1d"})
	if err != nil {
		return nil, err
	}
	if len(data.OHLCV) == 0 {
		return nil, dto.ErrNoMarketData
	}

	points := make([]dto.ChartPoint, 0, len(data.OHLCV))
	for _, bar := range data.OHLCV {
		points = append(points, dto.ChartPoint{
			Date:   bar.Time().In(utils.Location()).Format("2006-01-02"),
			Open:   utils.Round(bar.Open, 2),
			High:   utils.Round(bar.High, 2),
			Low:    utils.Round(bar.Low, 2),
			Close:  utils.Round(bar.Close, 2),
			Volume: int64(bar.Volume),
		})
	}

	firstOpen := data.OHLCV[0].Open
	current := data.OHLCV[len(data.OHLCV)-1].Close
	if price, _, ok := s.livePrice(ctx, ticker); ok {
		current = price
	}

	resp := &dto.ChartResponse{
		Ticker:       ticker,
		Timeframe:    timeframe,
		Data:         points,
		CurrentPrice: utils.Round(current, 2),
		LastUpdated:  utils.Now(),
		DataSource:   DataSourceLive,
	}
	if firstOpen != 0 {
		resp.Change = utils.Round(current-firstOpen, 2)
		resp.ChangePercent = utils.Round((current/firstOpen-1)*100, 2)
	}
	return resp, nil
}

func (s *analysisService) History(ctx context.Context, ticker string, limit int) ([]dto.SignalHistory, error) {
	if s.deps.Signals == nil {
		return []dto.SignalHistory{}, nil
	}
	return s.deps.Signals.History(ctx, ticker, limit)
}

func (s *analysisService) livePrice(ctx context.Context, ticker string) (float64, string, bool) {
	q, err := s.deps.MarketData.GetQuote(ctx, ticker)
	if err != nil {
		s.logger.DebugContext(ctx, "Live quote unavailable", logger.StringField("ticker", ticker), logger.ErrorField(err))
		return 0, "", false
	}
	price, ok := q.LivePrice()
	return price, q.ShortName, ok
}

func strongBuys(assets []dto.ScoredAsset) []string {
	var out []string
	for _, a := range assets {
		if a.Recommendation == scoring.StrongBuy {
			out = append(out, a.Ticker)
		}
	}
	return out
}
