package dto

import "time"

// News impact values.
const (
	ImpactPositive = "positive"
	ImpactNegative = "negative"
	ImpactNeutral  = "neutral"
)

// NewsItem is a market headline.
type NewsItem struct {
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Impact    string    `json:"impact"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Tickers   []string  `json:"tickers"`
	Link      string    `json:"link,omitempty"`
}

// NewsResponse is the payload of the news endpoint.
type NewsResponse struct {
	Timestamp time.Time  `json:"timestamp"`
	News      []NewsItem `json:"news"`
}
