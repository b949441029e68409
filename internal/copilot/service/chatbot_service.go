package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"golang-stock-copilot/internal/copilot/chatbot"
	"golang-stock-copilot/internal/copilot/config"
	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/repository"
	"golang-stock-copilot/internal/copilot/store"
	"golang-stock-copilot/pkg/logger"
	"golang-stock-copilot/pkg/utils"
)

const (
	SourceTemplate = "template"
	SourceGemini   = "gemini"

	contextAssets = 5
)

type ChatbotService interface {
	Ask(ctx context.Context, question string) (*dto.ChatbotResponse, error)
}

type chatbotService struct {
	cfg           *config.Config
	store         *store.Store
	opportunities OpportunityService
	responder     *chatbot.Responder
	ai            repository.AIRepository
	markdown      goldmark.Markdown
	logger        *logger.Logger
}

// NewChatbotService builds the chatbot. ai may be nil, in which case only templates are used.
func NewChatbotService(cfg *config.Config, st *store.Store, opportunities OpportunityService, ai repository.AIRepository, log *logger.Logger) ChatbotService {
	return &chatbotService{
		cfg:           cfg,
		store:         st,
		opportunities: opportunities,
		responder:     chatbot.NewResponder(),
		ai:            ai,
		markdown:      goldmark.New(goldmark.WithExtensions(extension.GFM)),
		logger:        log,
	}
}

func (s *chatbotService) Ask(ctx context.Context, question string) (*dto.ChatbotResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, dto.ErrMissingFields
	}

	assets := s.store.Assets()
	p := s.store.Portfolio()
	answer := s.responder.Respond(chatbot.Input{
		Question:      question,
		Assets:        assets,
		Portfolio:     &p,
		Opportunities: s.opportunities.Top().Opportunities,
	})

	text, source := answer.Text, SourceTemplate
	if answer.Category == chatbot.CategoryGeneral && s.cfg.AI.Enabled && s.ai != nil {
		generated, err := s.ai.Answer(ctx, question, MarketContext(assets, contextAssets))
		if err != nil {
			s.logger.WarnContext(ctx, "Falling back to template answer", logger.ErrorField(err))
		} else {
			text, source = generated, SourceGemini
		}
	}

	var html bytes.Buffer
	if err := s.markdown.Convert([]byte(text), &html); err != nil {
		return nil, fmt.Errorf("failed to render answer: %w", err)
	}

	return &dto.ChatbotResponse{
		Response:     text,
		ResponseHTML: html.String(),
		Category:     string(answer.Category),
		Ticker:       answer.Ticker,
		Source:       source,
		Timestamp:    utils.Now(),
	}, nil
}

// MarketContext summarises the best n assets of a batch for a language model prompt.
func MarketContext(assets []dto.ScoredAsset, n int) string {
	if len(assets) == 0 {
		return "No analysis batch is available yet."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d assets analysed. Top by score:\n", len(assets))
	for i, a := range assets {
		if i >= n {
			break
		}
		fmt.Fprintf(&b, "- %s (%s): %s, score %.0f, price %.2f, RSI %.1f, 1M momentum %+.1f%%\n",
			a.Ticker, a.Sector, a.Recommendation, a.Score, a.Price, a.RSI, a.Momentum1M)
	}
	return b.String()
}
