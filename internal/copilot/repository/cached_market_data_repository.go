package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"golang-stock-copilot/internal/copilot/config"
	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/pkg/common"
	"golang-stock-copilot/pkg/logger"
	redisPkg "golang-stock-copilot/pkg/redis"
)

type cachedMarketDataRepository struct {
	next          MarketDataRepository
	inmemoryCache *cache.Cache
	redisClient   *redisPkg.Client
	historyTTL    time.Duration
	quoteTTL      time.Duration
	log           *logger.Logger
}

// NewCachedMarketDataRepository puts an in-process cache and, when redisClient is
// not nil, a shared Redis cache in front of next.
func NewCachedMarketDataRepository(next MarketDataRepository, cfg *config.Config, redisClient *redisPkg.Client, log *logger.Logger) MarketDataRepository {
	historyTTL := cfg.MarketData.HistoryCacheTTL
	if historyTTL <= 0 {
		historyTTL = 5 * time.Minute
	}
	quoteTTL := cfg.MarketData.QuoteCacheTTL
	if quoteTTL <= 0 {
		quoteTTL = 30 * time.Second
	}
	return &cachedMarketDataRepository{
		next:          next,
		inmemoryCache: cache.New(historyTTL, 2*historyTTL),
		redisClient:   redisClient,
		historyTTL:    historyTTL,
		quoteTTL:      quoteTTL,
		log:           log,
	}
}

func (r *cachedMarketDataRepository) GetHistory(ctx context.Context, param dto.GetHistoryParam) (*dto.MarketData, error) {
	key := fmt.Sprintf(common.RedisKeyMarketHistory, strings.ToUpper(param.Ticker), param.Range, param.Interval)

	var data dto.MarketData
	if r.load(ctx, key, &data, r.historyTTL) {
		return &data, nil
	}

	fresh, err := r.next.GetHistory(ctx, param)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, fresh, r.historyTTL)
	return fresh, nil
}

func (r *cachedMarketDataRepository) GetQuote(ctx context.Context, ticker string) (*dto.Quote, error) {
	key := fmt.Sprintf(common.RedisKeyMarketQuote, strings.ToUpper(ticker))

	var q dto.Quote
	if r.load(ctx, key, &q, r.quoteTTL) {
		return &q, nil
	}

	fresh, err := r.next.GetQuote(ctx, ticker)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, fresh, r.quoteTTL)
	return fresh, nil
}

// load copies a cached value into out. Cache failures are logged and reported as a miss.
func (r *cachedMarketDataRepository) load(ctx context.Context, key string, out any, ttl time.Duration) bool {
	if v, ok := r.inmemoryCache.Get(key); ok {
		if raw, ok := v.([]byte); ok && json.Unmarshal(raw, out) == nil {
			return true
		}
	}
	if r.redisClient == nil {
		return false
	}

	raw, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.WarnContext(ctx, "Failed to read market cache", logger.StringField("key", key), logger.ErrorField(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	r.inmemoryCache.Set(key, raw, ttl)
	return true
}

func (r *cachedMarketDataRepository) store(ctx context.Context, key string, v any, ttl time.Duration) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	r.inmemoryCache.Set(key, raw, ttl)
	if r.redisClient == nil {
		return
	}
	if err := r.redisClient.Set(ctx, key, raw, ttl).Err(); err != nil {
		r.log.WarnContext(ctx, "Failed to write market cache", logger.StringField("key", key), logger.ErrorField(err))
	}
}
