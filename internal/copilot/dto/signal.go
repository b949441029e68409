package dto

import "time"

// TechnicalIndicators are derived from one OHLCV series.
type TechnicalIndicators struct {
	Price       float64 `json:"price"`
	SMA20       float64 `json:"sma_20"`
	SMA50       float64 `json:"sma_50"`
	RSI         float64 `json:"rsi"`
	MACD        float64 `json:"macd"`
	MACDSignal  float64 `json:"macd_signal"`
	VolumeRatio float64 `json:"volume_ratio"`
	Momentum1W  float64 `json:"momentum_1w"`
	Momentum1M  float64 `json:"momentum_1m"`
	Momentum3M  float64 `json:"momentum_3m"`
	BBUpper     float64 `json:"bb_upper"`
	BBLower     float64 `json:"bb_lower"`
	BBPosition  float64 `json:"bb_position"`
}

// ExpertSignal lists the tracked institutional holders of a ticker.
type ExpertSignal struct {
	Experts      []string `json:"experts"`
	NumExperts   int      `json:"num_experts"`
	ExpertWeight int      `json:"expert_weight"`
}

// SignalResult is the output of the asset scorer.
type SignalResult struct {
	Score          float64  `json:"score"`
	Recommendation string   `json:"recommendation"`
	Confidence     string   `json:"confidence"`
	RiskLevel      string   `json:"risk_level"`
	Reasoning      []string `json:"reasoning"`
}

// IndicatorSummary is the technical_indicators block of a scored asset.
type IndicatorSummary struct {
	SMA20      float64 `json:"sma_20"`
	SMA50      float64 `json:"sma_50"`
	RSI        float64 `json:"rsi"`
	MACD       float64 `json:"macd"`
	MACDSignal float64 `json:"macd_signal"`
	BBUpper    float64 `json:"bb_upper"`
	BBLower    float64 `json:"bb_lower"`
	BBPosition float64 `json:"bb_position"`
}

// NewsSentiment is a price-action based sentiment estimate for a ticker.
type NewsSentiment struct {
	Sentiment   string   `json:"sentiment"`
	Score       float64  `json:"score"`
	Headlines   []string `json:"headlines"`
	Confidence  string   `json:"confidence"`
	VolumeSurge bool     `json:"volume_surge"`
	Momentum    float64  `json:"momentum"`
}

// ScoredAsset is the per-ticker result of one analysis cycle.
type ScoredAsset struct {
	Ticker              string           `json:"ticker"`
	Name                string           `json:"name"`
	Sector              string           `json:"sector"`
	Price               float64          `json:"price"`
	Score               float64          `json:"score"`
	Recommendation      string           `json:"recommendation"`
	Confidence          string           `json:"confidence"`
	RiskLevel           string           `json:"risk_level"`
	ExpertSignal        float64          `json:"expert_signal"`
	NumExperts          int              `json:"num_experts"`
	Experts             []string         `json:"experts"`
	Momentum3M          float64          `json:"momentum_3m"`
	Momentum1M          float64          `json:"momentum_1m"`
	Momentum1W          float64          `json:"momentum_1w"`
	RSI                 float64          `json:"rsi"`
	VolumeRatio         float64          `json:"volume_ratio"`
	Trend               string           `json:"trend"`
	Reasoning           []string         `json:"reasoning"`
	TechnicalIndicators IndicatorSummary `json:"technical_indicators"`
	NewsSentiment       *NewsSentiment   `json:"news_sentiment,omitempty"`
	LastUpdated         *time.Time       `json:"last_updated,omitempty"`
	DataSource          string           `json:"data_source,omitempty"`
}

// MarketSnapshot is the last analysed batch. It is also the on-disk snapshot format.
type MarketSnapshot struct {
	CycleID       string        `json:"cycle_id,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
	Assets        []ScoredAsset `json:"assets"`
	TotalAnalyzed int           `json:"total_analyzed"`
	TotalUniverse int           `json:"total_universe,omitempty"`
}

// UrgentSignalsResponse is the payload of the urgent signals endpoint.
type UrgentSignalsResponse struct {
	Timestamp time.Time     `json:"timestamp"`
	Signals   []ScoredAsset `json:"signals"`
	Count     int           `json:"count"`
}

// CycleEvent is published on the analysis stream after every cycle.
type CycleEvent struct {
	CycleID       string    `json:"cycle_id"`
	Timestamp     time.Time `json:"timestamp"`
	TotalAnalyzed int       `json:"total_analyzed"`
	Skipped       int       `json:"skipped"`
	StrongBuys    []string  `json:"strong_buys"`
	Duration      string    `json:"duration"`
}

// SignalHistory is one persisted scoring of a ticker.
type SignalHistory struct {
	CycleID        string    `json:"cycle_id"`
	Ticker         string    `json:"ticker"`
	Score          float64   `json:"score"`
	Recommendation string    `json:"recommendation"`
	Price          float64   `json:"price"`
	Reasoning      []string  `json:"reasoning"`
	CreatedAt      time.Time `json:"created_at"`
}
