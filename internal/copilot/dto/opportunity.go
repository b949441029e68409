package dto

import "time"

// DetailedAnalysis explains an opportunity in plain text.
type DetailedAnalysis struct {
	WhyThisWorks          []string `json:"why_this_works"`
	RiskFactors           []string `json:"risk_factors"`
	TechnicalAnalysis     string   `json:"technical_analysis"`
	FundamentalAnalysis   string   `json:"fundamental_analysis"`
	InstitutionalActivity string   `json:"institutional_activity"`
	SectorOutlook         string   `json:"sector_outlook"`
}

// Opportunity is a ranked trade idea derived from a scored asset.
type Opportunity struct {
	Ticker            string  `json:"ticker"`
	Name              string  `json:"name"`
	Sector            string  `json:"sector"`
	MarketCap         string  `json:"market_cap"`
	CurrentPrice      float64 `json:"current_price"`
	ProfitTarget      float64 `json:"profit_target"`
	ProfitProbability float64 `json:"profit_probability"`
	RiskLevel         float64 `json:"risk_level"`
	ProfitScore       float64 `json:"profit_score"`
	EntryPrice        float64 `json:"entry_price"`
	StopLoss          float64 `json:"stop_loss"`
	TargetPrice       float64 `json:"target_price"`
	ExpectedReturn    float64 `json:"expected_return"`
	PositionSize      float64 `json:"position_size"`
	Timeline          string  `json:"timeline"`
	Confidence        string  `json:"confidence"`
	DetailedAnalysis
}

// OpportunityCriteria are the ranker's filter thresholds.
type OpportunityCriteria struct {
	MinProfitProbability float64 `json:"min_profit_probability"`
	MinProfitTarget      float64 `json:"min_profit_target"`
	MaxRiskLevel         float64 `json:"max_risk_level"`
	Limit                int     `json:"limit"`
}

// TopOpportunitiesResponse is the payload of the top opportunities endpoint.
type TopOpportunitiesResponse struct {
	Opportunities []Opportunity       `json:"opportunities"`
	Count         int                 `json:"count"`
	TotalAnalyzed int                 `json:"total_analyzed"`
	Timestamp     time.Time           `json:"timestamp"`
	Criteria      OpportunityCriteria `json:"criteria"`
	Fallback      bool                `json:"fallback"`
}
