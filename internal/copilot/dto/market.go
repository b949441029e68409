package dto

import "time"

// OHLCV is a single price bar.
type OHLCV struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// Time returns the bar timestamp as time.Time.
func (o OHLCV) Time() time.Time {
	return time.Unix(o.Timestamp, 0)
}

// GetHistoryParam selects a price history window.
type GetHistoryParam struct {
	Ticker   string
	Range    string
	Interval string
}

// MarketData is a chronological price series for one ticker.
type MarketData struct {
	Ticker      string  `json:"ticker"`
	Currency    string  `json:"currency"`
	MarketPrice float64 `json:"market_price"`
	OHLCV       []OHLCV `json:"ohlcv"`
}

// Quote carries the point-in-time price fields of a ticker. Any field may be zero.
type Quote struct {
	Ticker                     string  `json:"ticker"`
	ShortName                  string  `json:"short_name"`
	Currency                   string  `json:"currency"`
	RegularMarketPrice         float64 `json:"regular_market_price"`
	CurrentPrice               float64 `json:"current_price"`
	RegularMarketPreviousClose float64 `json:"regular_market_previous_close"`
	PreviousClose              float64 `json:"previous_close"`
}

// LivePrice returns the first positive price in priority order:
// regular market price, current price, regular market previous close, previous close.
func (q Quote) LivePrice() (float64, bool) {
	for _, p := range []float64{q.RegularMarketPrice, q.CurrentPrice, q.RegularMarketPreviousClose, q.PreviousClose} {
		if p > 0 {
			return p, true
		}
	}
	return 0, false
}

// ChartPoint is one bar of a chart response, rounded for display.
type ChartPoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// ChartResponse is the payload of the chart endpoint.
type ChartResponse struct {
	Ticker        string       `json:"ticker"`
	Timeframe     string       `json:"timeframe"`
	Data          []ChartPoint `json:"data"`
	CurrentPrice  float64      `json:"current_price"`
	Change        float64      `json:"change"`
	ChangePercent float64      `json:"change_percent"`
	LastUpdated   time.Time    `json:"last_updated"`
	DataSource    string       `json:"data_source"`
}

// SearchResult is a ticker found in the universe.
type SearchResult struct {
	Ticker string `json:"ticker"`
	Sector string `json:"sector"`
}

// SearchResponse is the payload of the search endpoint.
type SearchResponse struct {
	Query  string         `json:"query"`
	Assets []SearchResult `json:"assets"`
}

// StatsResponse summarises the last analysed batch.
type StatsResponse struct {
	TotalAssets   int       `json:"total_assets"`
	TotalUniverse int       `json:"total_universe"`
	StrongBuys    int       `json:"strong_buys"`
	Buys          int       `json:"buys"`
	Sells         int       `json:"sells"`
	ActiveAlerts  int       `json:"active_alerts"`
	LastUpdate    time.Time `json:"last_update"`
}

// RefreshResponse is returned after a manual refresh.
type RefreshResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
