package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"golang-stock-copilot/internal/copilot/config"
	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/pkg/logger"
)

type yahooChartRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewYahooChartRepository reads bars and quotes from the Yahoo Finance v8 chart endpoint.
func NewYahooChartRepository(cfg *config.Config, log *logger.Logger) MarketDataRepository {
	perMinute := cfg.MarketData.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 60
	}
	timeout := cfg.MarketData.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	secondsPerRequest := time.Minute / time.Duration(perMinute)
	return &yahooChartRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

type yahooChartMeta struct {
	Symbol             string  `json:"symbol"`
	Currency           string  `json:"currency"`
	ShortName          string  `json:"shortName"`
	LongName           string  `json:"longName"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	ChartPreviousClose float64 `json:"chartPreviousClose"`
	PreviousClose      float64 `json:"previousClose"`
}

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta       yahooChartMeta `json:"meta"`
			Timestamp  []int64        `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (r *yahooChartRepository) GetHistory(ctx context.Context, param dto.GetHistoryParam) (*dto.MarketData, error) {
	chart, err := r.fetchChart(ctx, param.Ticker, param.Range, param.Interval)
	if err != nil {
		return nil, err
	}

	result := chart.Chart.Result[0]
	data := &dto.MarketData{
		Ticker:      strings.ToUpper(param.Ticker),
		Currency:    result.Meta.Currency,
		MarketPrice: result.Meta.RegularMarketPrice,
	}
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: %w", param.Ticker, dto.ErrNoMarketData)
	}
	q := result.Indicators.Quote[0]

	seen := make(map[int64]bool, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		c := at(q.Close, i)
		if c == nil || seen[ts] {
			continue
		}
		seen[ts] = true
		bar := dto.OHLCV{Timestamp: ts, Close: *c}
		bar.Open = valueOr(at(q.Open, i), *c)
		bar.High = valueOr(at(q.High, i), *c)
		bar.Low = valueOr(at(q.Low, i), *c)
		bar.Volume = valueOr(at(q.Volume, i), 0)
		data.OHLCV = append(data.OHLCV, bar)
	}
	if len(data.OHLCV) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: %w", param.Ticker, dto.ErrNoMarketData)
	}
	sort.Slice(data.OHLCV, func(i, j int) bool { return data.OHLCV[i].Timestamp < data.OHLCV[j].Timestamp })

	return data, nil
}

func (r *yahooChartRepository) GetQuote(ctx context.Context, ticker string) (*dto.Quote, error) {
	chart, err := r.fetchChart(ctx, ticker, "1d", "1d")
	if err != nil {
		return nil, err
	}
	meta := chart.Chart.Result[0].Meta
	name := meta.ShortName
	if name == "" {
		name = meta.LongName
	}
	return &dto.Quote{
		Ticker:                     strings.ToUpper(ticker),
		ShortName:                  name,
		Currency:                   meta.Currency,
		RegularMarketPrice:         meta.RegularMarketPrice,
		RegularMarketPreviousClose: meta.ChartPreviousClose,
		PreviousClose:              meta.PreviousClose,
	}, nil
}

func (r *yahooChartRepository) fetchChart(ctx context.Context, ticker, rng, interval string) (*yahooChartResponse, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		strings.TrimRight(r.cfg.MarketData.BaseURL, "/"),
		url.PathEscape(strings.ToUpper(ticker)),
		url.QueryEscape(rng),
		url.QueryEscape(interval))

	body, status, err := r.sendRequest(ctx, u)
	if err != nil {
		return nil, err
	}

	var chart yahooChartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		if status == http.StatusNotFound {
			return nil, fmt.Errorf("yahoo chart %s: %w", ticker, dto.ErrTickerNotFound)
		}
		return nil, fmt.Errorf("failed to decode yahoo chart response: %w", err)
	}
	if e := chart.Chart.Error; e != nil {
		if status == http.StatusNotFound || strings.EqualFold(e.Code, "Not Found") {
			return nil, fmt.Errorf("yahoo chart %s: %s: %w", ticker, e.Description, dto.ErrTickerNotFound)
		}
		return nil, fmt.Errorf("yahoo chart %s: %s", ticker, e.Description)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("yahoo chart %s: unexpected status %d", ticker, status)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo chart %s: %w", ticker, dto.ErrTickerNotFound)
	}
	return &chart, nil
}

func (r *yahooChartRepository) sendRequest(ctx context.Context, u string) ([]byte, int, error) {
	fields := []zap.Field{
		zap.String("url", u),
		zap.Int("max_request_per_minute", r.cfg.MarketData.MaxRequestPerMinute),
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return nil, 0, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
	req.Header.Set("Accept", "application/json, text/plain, */*")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to send request to Yahoo chart API", fields...)
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to read response body from Yahoo chart API", fields...)
		return nil, resp.StatusCode, err
	}
	if resp.StatusCode != http.StatusOK {
		fields = append(fields, zap.Int("status_code", resp.StatusCode))
		r.log.DebugContext(ctx, "Received non-OK response from Yahoo chart API", fields...)
	}

	return body, resp.StatusCode, nil
}

func at(values []*float64, i int) *float64 {
	if i < len(values) {
		return values[i]
	}
	return nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// IsNotFound reports whether err means the ticker does not exist upstream.
func IsNotFound(err error) bool {
	return errors.Is(err, dto.ErrTickerNotFound)
}
