package service

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang-stock-copilot/internal/copilot/config"
	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/repository"
	"golang-stock-copilot/internal/copilot/scoring"
	"golang-stock-copilot/internal/copilot/store"
	"golang-stock-copilot/pkg/logger"
	"golang-stock-copilot/pkg/utils"
)

const maxContentChars = 1200

var (
	positiveWords = []string{"surge", "soar", "rally", "record", "beat", "gain", "jump", "rise", "boost", "upgrade", "growth", "cut rates", "rate cut", "all-time high", "bullish"}
	negativeWords = []string{"plunge", "fall", "drop", "slump", "miss", "loss", "cut to", "downgrade", "lawsuit", "tension", "recession", "crash", "probe", "layoff", "bearish", "spike in oil"}

	upperToken = regexp.MustCompile(`\$?[A-Z][A-Z0-9.\-]{1,9}`)

	// Tickers that are also common words in headlines only count with a $ prefix.
	ambiguousTickers = map[string]bool{"AI": true, "ALL": true, "ON": true, "NOW": true, "SO": true, "KEY": true, "FAST": true, "LOW": true, "IT": true}
)

// NewsService serves market headlines with detected tickers and a keyword impact.
type NewsService interface {
	Latest(ctx context.Context) []dto.NewsItem
	Refresh(ctx context.Context) ([]dto.NewsItem, error)
}

type newsService struct {
	cfg    *config.Config
	repo   repository.NewsRepository
	store  *store.Store
	logger *logger.Logger
}

func NewNewsService(cfg *config.Config, repo repository.NewsRepository, st *store.Store, log *logger.Logger) NewsService {
	return &newsService{cfg: cfg, repo: repo, store: st, logger: log}
}

// Latest returns the cached news, refreshing it when older than news.cache_ttl.
func (s *newsService) Latest(ctx context.Context) []dto.NewsItem {
	items, at := s.store.News()
	if len(items) > 0 && time.Since(at) < s.cfg.News.CacheTTL {
		return items
	}
	fresh, err := s.Refresh(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "News refresh failed", logger.ErrorField(err))
		if len(items) > 0 {
			return items
		}
		return FallbackNews(utils.Now())
	}
	return fresh
}

// Refresh reads every configured feed. When no feed yields items the static headlines are stored instead.
func (s *newsService) Refresh(ctx context.Context) ([]dto.NewsItem, error) {
	var all []dto.NewsItem
	seen := make(map[string]bool)
	for _, url := range s.cfg.News.Feeds {
		items, err := s.repo.FetchFeed(ctx, url, s.cfg.News.MaxItems)
		if err != nil {
			continue
		}
		for _, it := range items {
			key := strings.ToLower(it.Title)
			if seen[key] {
				continue
			}
			seen[key] = true
			all = append(all, it)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(all) == 0 {
		all = FallbackNews(utils.Now())
	} else {
		sort.SliceStable(all, func(i, j int) bool { return all[i].Timestamp.After(all[j].Timestamp) })
		if len(all) > s.cfg.News.MaxItems {
			all = all[:s.cfg.News.MaxItems]
		}
		for i := range all {
			s.enrich(ctx, &all[i])
		}
	}

	s.store.SetNews(all, time.Now())
	return all, nil
}

func (s *newsService) enrich(ctx context.Context, item *dto.NewsItem) {
	text := item.Title + " " + item.Summary
	if s.cfg.News.FetchContent && item.Link != "" {
		content, err := s.repo.FetchContent(ctx, item.Link)
		if err != nil {
			s.logger.DebugContext(ctx, "Article body unavailable", logger.StringField("url", item.Link), logger.ErrorField(err))
		} else if content != "" {
			if len(content) > maxContentChars {
				content = content[:maxContentChars]
			}
			text += " " + content
		}
	}
	item.Tickers = DetectTickers(text)
	item.Impact = Impact(text)
}

// DetectTickers returns the universe tickers mentioned in text, in order of appearance.
func DetectTickers(text string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, tok := range upperToken.FindAllString(text, -1) {
		dollar := strings.HasPrefix(tok, "$")
		tok = strings.TrimRight(strings.TrimPrefix(tok, "$"), ".-")
		if seen[tok] || !scoring.InUniverse(tok) || (ambiguousTickers[tok] && !dollar) {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// Impact classifies text as positive, negative or neutral from keyword counts.
func Impact(text string) string {
	lower := strings.ToLower(text)
	pos, neg := 0, 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}
	switch {
	case pos > neg:
		return dto.ImpactPositive
	case neg > pos:
		return dto.ImpactNegative
	default:
		return dto.ImpactNeutral
	}
}

// FallbackNews is served when no feed could be read.
func FallbackNews(now time.Time) []dto.NewsItem {
	return []dto.NewsItem{
		{
			Title:     "Federal Reserve Signals Potential Rate Cuts",
			Summary:   "Fed Chair Powell hints at monetary policy easing, boosting market sentiment",
			Impact:    dto.ImpactPositive,
			Timestamp: now,
			Source:    "Bloomberg",
			Tickers:   []string{"SPY", "QQQ", "XLF"},
		},
		{
			Title:     "NVIDIA Reports Record Quarterly Earnings",
			Summary:   "AI chip demand drives 200% revenue growth, stock surges 15%",
			Impact:    dto.ImpactPositive,
			Timestamp: now.Add(-2 * time.Hour),
			Source:    "CNBC",
			Tickers:   []string{"NVDA", "AMD", "INTC"},
		},
		{
			Title:     "Oil Prices Spike on Middle East Tensions",
			Summary:   "Crude oil futures up 5% following geopolitical developments",
			Impact:    dto.ImpactNegative,
			Timestamp: now.Add(-4 * time.Hour),
			Source:    "Reuters",
			Tickers:   []string{"XOM", "CVX", "USO"},
		},
		{
			Title:     "Bitcoin Surges Past $100K Milestone",
			Summary:   "Cryptocurrency reaches new all-time high on institutional adoption",
			Impact:    dto.ImpactPositive,
			Timestamp: now.Add(-6 * time.Hour),
			Source:    "CoinDesk",
			Tickers:   []string{"BTC-USD", "ETH-USD", "COIN"},
		},
	}
}
