package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang-stock-copilot/internal/copilot/config"
	"golang-stock-copilot/internal/copilot/dto"
)

type fakeMarketData struct {
	mu        sync.Mutex
	bars      map[string][]dto.OHLCV
	quotes    map[string]float64
	calls     int
	block     chan struct{}
	lastRange string
}

func newFakeMarketData() *fakeMarketData {
	return &fakeMarketData{bars: map[string][]dto.OHLCV{}, quotes: map[string]float64{}}
}

func (f *fakeMarketData) GetHistory(ctx context.Context, param dto.GetHistoryParam) (*dto.MarketData, error) {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastRange = param.Range
	bars, ok := f.bars[strings.ToUpper(param.Ticker)]
	if !ok {
		return nil, dto.ErrTickerNotFound
	}
	return &dto.MarketData{Ticker: param.Ticker, OHLCV: bars}, nil
}

func (f *fakeMarketData) GetQuote(ctx context.Context, ticker string) (*dto.Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.quotes[strings.ToUpper(ticker)]
	if !ok {
		return nil, dto.ErrTickerNotFound
	}
	return &dto.Quote{Ticker: ticker, RegularMarketPrice: p, ShortName: ticker + " Inc."}, nil
}

type fakeSnapshots struct {
	saved []dto.MarketSnapshot
}

func (f *fakeSnapshots) Save(s *dto.MarketSnapshot) error {
	f.saved = append(f.saved, *s)
	return nil
}

func (f *fakeSnapshots) Load() (*dto.MarketSnapshot, error) {
	if len(f.saved) == 0 {
		return nil, dto.ErrNoMarketData
	}
	s := f.saved[len(f.saved)-1]
	return &s, nil
}

type fakeSignals struct {
	batches map[string][]dto.ScoredAsset
}

func (f *fakeSignals) CreateBatch(ctx context.Context, cycleID string, assets []dto.ScoredAsset) error {
	if f.batches == nil {
		f.batches = map[string][]dto.ScoredAsset{}
	}
	f.batches[cycleID] = assets
	return nil
}

func (f *fakeSignals) History(ctx context.Context, ticker string, limit int) ([]dto.SignalHistory, error) {
	var out []dto.SignalHistory
	for id, assets := range f.batches {
		for _, a := range assets {
			if a.Ticker == ticker {
				out = append(out, dto.SignalHistory{CycleID: id, Ticker: a.Ticker, Score: a.Score})
			}
		}
	}
	return out, nil
}

type fakeEvents struct {
	events []dto.CycleEvent
}

func (f *fakeEvents) Publish(ctx context.Context, e dto.CycleEvent) error {
	f.events = append(f.events, e)
	return nil
}

type fakeAlerts struct {
	batches [][]dto.ScoredAsset
}

func (f *fakeAlerts) Evaluate(ctx context.Context, assets []dto.ScoredAsset) []dto.TriggeredAlert {
	f.batches = append(f.batches, assets)
	return nil
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeNotifier) SendMessage(ctx context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, text)
	return nil
}

type fakeDedupe struct {
	claimed map[string]bool
}

func (f *fakeDedupe) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if f.claimed == nil {
		f.claimed = map[string]bool{}
	}
	if f.claimed[key] {
		return false, nil
	}
	f.claimed[key] = true
	return true, nil
}

type fakeNews struct {
	feeds   map[string][]dto.NewsItem
	content string
}

func (f *fakeNews) FetchFeed(ctx context.Context, url string, limit int) ([]dto.NewsItem, error) {
	items, ok := f.feeds[url]
	if !ok {
		return nil, dto.ErrNoMarketData
	}
	return items, nil
}

func (f *fakeNews) FetchContent(ctx context.Context, url string) (string, error) {
	return f.content, nil
}

type fakeAI struct {
	answer string
	err    error
	asked  []string
}

func (f *fakeAI) Answer(ctx context.Context, question, marketContext string) (string, error) {
	f.asked = append(f.asked, question)
	return f.answer, f.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	return cfg
}

// risingBars returns n daily bars climbing by step from start.
func risingBars(n int, start, step float64) []dto.OHLCV {
	bars := make([]dto.OHLCV, n)
	for i := range bars {
		c := start + float64(i)*step
		bars[i] = dto.OHLCV{Timestamp: int64(1700000000 + i*86400), Open: c - step/2, High: c + 1, Low: c - 1, Close: c, Volume: 1000}
	}
	return bars
}
