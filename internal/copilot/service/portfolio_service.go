package service

import (
	"context"
	"io"
	"strings"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/portfolio"
	"golang-stock-copilot/internal/copilot/repository"
	"golang-stock-copilot/internal/copilot/scoring"
	"golang-stock-copilot/internal/copilot/store"
	"golang-stock-copilot/pkg/logger"
	"golang-stock-copilot/pkg/utils"
)

const (
	ActionAddPosition    = "add_position"
	ActionRemovePosition = "remove_position"
	SourceManual         = "manual"
)

// PortfolioService edits the single in-memory portfolio.
type PortfolioService interface {
	Get() dto.Portfolio
	Apply(ctx context.Context, req dto.PortfolioActionRequest) (*dto.SuccessResponse, error)
	Import(ctx context.Context, r io.Reader) (*dto.PortfolioImportResponse, error)
	RefreshPrices(ctx context.Context) (dto.Portfolio, error)
}

type portfolioService struct {
	store      *store.Store
	marketData repository.MarketDataRepository
	logger     *logger.Logger
}

func NewPortfolioService(st *store.Store, marketData repository.MarketDataRepository, log *logger.Logger) PortfolioService {
	return &portfolioService{store: st, marketData: marketData, logger: log}
}

func (s *portfolioService) Get() dto.Portfolio {
	p := s.store.Portfolio()
	if p.Positions == nil {
		p.Positions = []dto.Position{}
	}
	return p
}

// Apply adds or removes a position. Adding a ticker that is already held averages the cost.
func (s *portfolioService) Apply(ctx context.Context, req dto.PortfolioActionRequest) (*dto.SuccessResponse, error) {
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	p := s.store.Portfolio()

	switch req.Action {
	case ActionAddPosition:
		if ticker == "" || req.Shares <= 0 || req.Price <= 0 {
			return nil, dto.ErrMissingFields
		}
		now := utils.Now()
		merged := false
		for i := range p.Positions {
			pos := &p.Positions[i]
			if pos.Ticker != ticker {
				continue
			}
			cost := pos.Shares*pos.AvgPrice + req.Shares*req.Price
			pos.Shares += req.Shares
			pos.AvgPrice = cost / pos.Shares
			if pos.CurrentPrice > 0 {
				pos.PnL = utils.Round((pos.CurrentPrice-pos.AvgPrice)*pos.Shares, 2)
			}
			merged = true
			break
		}
		if !merged {
			p.Positions = append(p.Positions, dto.Position{
				Ticker:   ticker,
				Shares:   req.Shares,
				AvgPrice: req.Price,
				Sector:   scoring.SectorOf(ticker),
				AddedAt:  &now,
			})
		}
		if p.Source == "" {
			p.Source = SourceManual
		}
		s.save(&p)
		s.logger.InfoContext(ctx, "Position added", logger.StringField("ticker", ticker), logger.FloatField("shares", req.Shares))
		return &dto.SuccessResponse{Success: true, Message: "Position added"}, nil

	case ActionRemovePosition:
		if ticker == "" {
			return nil, dto.ErrMissingFields
		}
		kept := p.Positions[:0]
		for _, pos := range p.Positions {
			if pos.Ticker != ticker {
				kept = append(kept, pos)
			}
		}
		p.Positions = kept
		s.save(&p)
		return &dto.SuccessResponse{Success: true, Message: "Position removed"}, nil

	default:
		return nil, dto.ErrInvalidAction
	}
}

// Import replaces the portfolio with the positions of a broker CSV export.
func (s *portfolioService) Import(ctx context.Context, r io.Reader) (*dto.PortfolioImportResponse, error) {
	p, err := portfolio.Import(r)
	if err != nil {
		return nil, err
	}
	s.store.SetPortfolio(*p)
	s.logger.InfoContext(ctx, "Portfolio imported",
		logger.IntField("positions", len(p.Positions)),
		logger.IntField("skipped_rows", p.SkippedRows))

	return &dto.PortfolioImportResponse{
		Success:     true,
		Imported:    len(p.Positions),
		SkippedRows: p.SkippedRows,
		Portfolio:   *p,
	}, nil
}

// RefreshPrices updates current prices and P&L from live quotes. Positions whose quote fails keep their old price.
func (s *portfolioService) RefreshPrices(ctx context.Context) (dto.Portfolio, error) {
	p := s.store.Portfolio()
	for i := range p.Positions {
		if err := ctx.Err(); err != nil {
			return dto.Portfolio{}, err
		}
		pos := &p.Positions[i]
		q, err := s.marketData.GetQuote(ctx, pos.Ticker)
		if err != nil {
			s.logger.WarnContext(ctx, "Failed to refresh position price", logger.StringField("ticker", pos.Ticker), logger.ErrorField(err))
			continue
		}
		if price, ok := q.LivePrice(); ok {
			pos.CurrentPrice = price
			pos.PnL = utils.Round((price-pos.AvgPrice)*pos.Shares, 2)
		}
	}
	s.save(&p)
	return s.store.Portfolio(), nil
}

func (s *portfolioService) save(p *dto.Portfolio) {
	portfolio.Renormalize(p)
	now := utils.Now()
	p.UpdatedAt = &now
	s.store.SetPortfolio(*p)
}
