package repository

import (
	"context"
	"fmt"

	"golang-stock-copilot/internal/copilot/config"
	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/pkg/logger"
)

// Market data providers.
const (
	ProviderYahooChart = "yahoo_chart"
	ProviderFinanceGo  = "finance_go"
)

// MarketDataRepository fetches price history and live quotes.
type MarketDataRepository interface {
	GetHistory(ctx context.Context, param dto.GetHistoryParam) (*dto.MarketData, error)
	GetQuote(ctx context.Context, ticker string) (*dto.Quote, error)
}

// NewMarketDataRepository builds the provider selected by cfg.MarketData.Provider.
func NewMarketDataRepository(cfg *config.Config, log *logger.Logger) (MarketDataRepository, error) {
	switch cfg.MarketData.Provider {
	case "", ProviderYahooChart:
		return NewYahooChartRepository(cfg, log), nil
	case ProviderFinanceGo:
		return NewFinanceGoRepository(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown market data provider %q", cfg.MarketData.Provider)
	}
}
