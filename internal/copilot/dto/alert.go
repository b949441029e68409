package dto

import "time"

// Alert types.
const (
	AlertTypePriceAbove = "price_above"
	AlertTypePriceBelow = "price_below"
	AlertTypeScoreAbove = "score_above"
	AlertTypeScoreBelow = "score_below"
)

// Alert is a user defined threshold on a ticker.
type Alert struct {
	ID          int        `json:"id"`
	Ticker      string     `json:"ticker"`
	Type        string     `json:"type"`
	Threshold   float64    `json:"threshold"`
	Priority    string     `json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	Active      bool       `json:"active"`
	TriggeredAt *time.Time `json:"triggered_at,omitempty"`
	LastValue   float64    `json:"last_value,omitempty"`
}

// CreateAlertRequest is the body of POST /alerts.
type CreateAlertRequest struct {
	Ticker    string  `json:"ticker" validate:"required,max=20"`
	Type      string  `json:"type" validate:"required,oneof=price_above price_below score_above score_below"`
	Threshold float64 `json:"threshold" validate:"gt=0"`
	Priority  string  `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
}

// AlertsResponse lists alerts.
type AlertsResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Alerts    []Alert   `json:"alerts"`
}

// CreateAlertResponse wraps a created alert.
type CreateAlertResponse struct {
	Success bool  `json:"success"`
	Alert   Alert `json:"alert"`
}

// TriggeredAlert pairs an alert with the value that fired it.
type TriggeredAlert struct {
	Alert Alert   `json:"alert"`
	Value float64 `json:"value"`
}
