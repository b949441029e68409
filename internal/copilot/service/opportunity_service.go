package service

import (
	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/ranking"
	"golang-stock-copilot/internal/copilot/store"
	"golang-stock-copilot/pkg/utils"
)

type OpportunityService interface {
	Top() dto.TopOpportunitiesResponse
}

type opportunityService struct {
	store    *store.Store
	criteria dto.OpportunityCriteria
}

func NewOpportunityService(st *store.Store) OpportunityService {
	return &opportunityService{store: st, criteria: ranking.DefaultCriteria()}
}

// Top ranks the last batch. Before the first cycle completes it returns the static defaults.
func (s *opportunityService) Top() dto.TopOpportunitiesResponse {
	assets := s.store.Assets()
	resp := dto.TopOpportunitiesResponse{
		TotalAnalyzed: len(assets),
		Timestamp:     utils.Now(),
		Criteria:      s.criteria,
	}
	if len(assets) == 0 {
		resp.Opportunities = ranking.DefaultOpportunities()
		resp.Fallback = true
	} else {
		resp.Opportunities = ranking.Rank(assets, s.criteria)
	}
	resp.Count = len(resp.Opportunities)
	return resp
}
