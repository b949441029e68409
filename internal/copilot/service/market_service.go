package service

import (
	"strings"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/scoring"
	"golang-stock-copilot/internal/copilot/store"
	"golang-stock-copilot/pkg/utils"
)

const searchLimit = 20

// MarketService reads the last analysed batch.
type MarketService interface {
	Snapshot() (*dto.MarketSnapshot, error)
	UrgentSignals(threshold float64) dto.UrgentSignalsResponse
	Search(query string) dto.SearchResponse
	Stats() (*dto.StatsResponse, error)
}

type marketService struct {
	store  *store.Store
	alerts AlertService
}

func NewMarketService(st *store.Store, alerts AlertService) MarketService {
	return &marketService{store: st, alerts: alerts}
}

// Snapshot returns dto.ErrNoMarketData until the first cycle has completed.
func (s *marketService) Snapshot() (*dto.MarketSnapshot, error) {
	snap, ok := s.store.Snapshot()
	if !ok {
		return nil, dto.ErrNoMarketData
	}
	return &snap, nil
}

func (s *marketService) UrgentSignals(threshold float64) dto.UrgentSignalsResponse {
	signals := UrgentSignals(s.store.Assets(), threshold)
	return dto.UrgentSignalsResponse{
		Timestamp: utils.Now(),
		Signals:   signals,
		Count:     len(signals),
	}
}

// Search finds universe tickers containing query.
func (s *marketService) Search(query string) dto.SearchResponse {
	query = strings.ToUpper(strings.TrimSpace(query))
	resp := dto.SearchResponse{Query: query, Assets: []dto.SearchResult{}}
	if query == "" {
		return resp
	}
	resp.Assets = scoring.Search(query, searchLimit)
	return resp
}

func (s *marketService) Stats() (*dto.StatsResponse, error) {
	snap, ok := s.store.Snapshot()
	if !ok {
		return nil, dto.ErrNoMarketData
	}
	stats := &dto.StatsResponse{
		TotalAssets:   len(snap.Assets),
		TotalUniverse: scoring.TotalUniverse(),
		LastUpdate:    snap.Timestamp,
	}
	for _, a := range snap.Assets {
		if a.Recommendation == scoring.StrongBuy {
			stats.StrongBuys++
		}
		if strings.Contains(a.Recommendation, "BUY") {
			stats.Buys++
		}
		if strings.Contains(a.Recommendation, "SELL") {
			stats.Sells++
		}
	}
	if s.alerts != nil {
		stats.ActiveAlerts = s.alerts.ActiveCount()
	}
	return stats, nil
}
