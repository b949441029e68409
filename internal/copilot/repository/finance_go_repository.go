package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
	"golang.org/x/time/rate"

	"golang-stock-copilot/internal/copilot/config"
	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/pkg/logger"
	"golang-stock-copilot/pkg/utils"
)

type financeGoRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	requestLimiter *rate.Limiter
}

// NewFinanceGoRepository reads market data through the piquette/finance-go client.
func NewFinanceGoRepository(cfg *config.Config, log *logger.Logger) MarketDataRepository {
	perMinute := cfg.MarketData.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 60
	}
	return &financeGoRepository{
		cfg:            cfg,
		log:            log,
		requestLimiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
	}
}

func (r *financeGoRepository) GetHistory(ctx context.Context, param dto.GetHistoryParam) (*dto.MarketData, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	symbol := strings.ToUpper(param.Ticker)
	end := utils.Now()
	start := end.Add(-RangeDuration(param.Range))
	iter := chart.Get(&chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: financeGoInterval(param.Interval),
	})

	data := &dto.MarketData{Ticker: symbol}
	seen := make(map[int64]bool)
	for iter.Next() {
		bar := iter.Bar()
		ts := int64(bar.Timestamp)
		if seen[ts] || bar.Close.IsZero() {
			continue
		}
		seen[ts] = true
		data.OHLCV = append(data.OHLCV, dto.OHLCV{
			Timestamp: ts,
			Open:      bar.Open.InexactFloat64(),
			High:      bar.High.InexactFloat64(),
			Low:       bar.Low.InexactFloat64(),
			Close:     bar.Close.InexactFloat64(),
			Volume:    float64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		r.log.WarnContext(ctx, "finance-go chart request failed",
			logger.StringField("ticker", symbol), logger.ErrorField(err))
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, fmt.Errorf("finance-go chart %s: %w", symbol, dto.ErrTickerNotFound)
		}
		return nil, fmt.Errorf("failed to get historical data for %s: %w", symbol, err)
	}
	if len(data.OHLCV) == 0 {
		return nil, fmt.Errorf("finance-go chart %s: %w", symbol, dto.ErrNoMarketData)
	}
	data.MarketPrice = data.OHLCV[len(data.OHLCV)-1].Close

	return data, nil
}

func (r *financeGoRepository) GetQuote(ctx context.Context, ticker string) (*dto.Quote, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	symbol := strings.ToUpper(ticker)
	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("finance-go quote %s: %w", symbol, dto.ErrTickerNotFound)
	}

	return &dto.Quote{
		Ticker:                     symbol,
		ShortName:                  q.ShortName,
		Currency:                   q.CurrencyID,
		RegularMarketPrice:         q.RegularMarketPrice,
		RegularMarketPreviousClose: q.RegularMarketPreviousClose,
	}, nil
}

// RangeDuration converts a Yahoo range string (5d, 1mo, 3mo, 6mo, 1y, 2y) to a lookback window.
// Unknown values fall back to three months.
func RangeDuration(rng string) time.Duration {
	const day = 24 * time.Hour
	switch rng {
	case "1d":
		return 5 * day
	case "5d":
		return 7 * day
	case "1mo":
		return 31 * day
	case "3mo":
		return 92 * day
	case "6mo":
		return 183 * day
	case "1y":
		return 366 * day
	case "2y":
		return 731 * day
	case "5y":
		return 5 * 366 * day
	default:
		return 92 * day
	}
}

// datetime has no weekly constant; Yahoo accepts "1wk".
const weeklyInterval = datetime.Interval("1wk")

func financeGoInterval(interval string) datetime.Interval {
	switch interval {
	case "1h", "60m":
		return datetime.OneHour
	case "1wk":
		return weeklyInterval
	case "1mo":
		return datetime.OneMonth
	default:
		return datetime.OneDay
	}
}
