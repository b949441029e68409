package dto

import "time"

// Position is a single holding.
type Position struct {
	Ticker       string     `json:"ticker"`
	Shares       float64    `json:"shares"`
	AvgPrice     float64    `json:"avg_price"`
	CurrentPrice float64    `json:"current_price"`
	PnL          float64    `json:"pnl"`
	Value        float64    `json:"value"`
	Weight       float64    `json:"weight"`
	Sector       string     `json:"sector,omitempty"`
	AddedAt      *time.Time `json:"added_at,omitempty"`
}

// PortfolioSummary aggregates all positions.
type PortfolioSummary struct {
	TotalCost      float64 `json:"total_cost"`
	TotalValue     float64 `json:"total_value"`
	TotalPnL       float64 `json:"total_pnl"`
	TotalReturnPct float64 `json:"total_return_pct"`
	Positions      int     `json:"positions"`
}

// Portfolio is the normalised position list.
type Portfolio struct {
	Positions   []Position       `json:"positions"`
	Summary     PortfolioSummary `json:"summary"`
	Source      string           `json:"source,omitempty"`
	SkippedRows int              `json:"skipped_rows"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
}

// PortfolioActionRequest adds or removes a position.
type PortfolioActionRequest struct {
	Action string  `json:"action" validate:"required"`
	Ticker string  `json:"ticker"`
	Shares float64 `json:"shares" validate:"gte=0"`
	Price  float64 `json:"price" validate:"gte=0"`
}

// PortfolioImportResponse is returned after a CSV import.
type PortfolioImportResponse struct {
	Success     bool      `json:"success"`
	Imported    int       `json:"imported"`
	SkippedRows int       `json:"skipped_rows"`
	Portfolio   Portfolio `json:"portfolio"`
}
