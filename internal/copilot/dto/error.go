package dto

import "errors"

var (
	ErrTickerNotFound    = errors.New("ticker not found")
	ErrNoMarketData      = errors.New("no data available")
	ErrInsufficientData  = errors.New("insufficient price history")
	ErrRefreshInProgress = errors.New("refresh already in progress")
	ErrAlertNotFound     = errors.New("alert not found")
	ErrMissingFields     = errors.New("missing required fields")
	ErrInvalidAction     = errors.New("invalid action")
)

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is returned by mutating endpoints that have no other payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
