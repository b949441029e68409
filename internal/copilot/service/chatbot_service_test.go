package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-copilot/internal/copilot/chatbot"
	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/repository"
	"golang-stock-copilot/internal/copilot/store"
	"golang-stock-copilot/pkg/logger"
)

func newChatbotFixture(aiEnabled bool, ai *fakeAI) (ChatbotService, *store.Store) {
	cfg := testConfig()
	cfg.AI.Enabled = aiEnabled
	st := store.New()
	var repo repository.AIRepository
	if ai != nil {
		repo = ai
	}
	return NewChatbotService(cfg, st, NewOpportunityService(st), repo, logger.NewNop()), st
}

func TestChatbot_EmptyQuestion(t *testing.T) {
	svc, _ := newChatbotFixture(false, nil)
	_, err := svc.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, dto.ErrMissingFields)
}

func TestChatbot_TemplateAnswerRendersHTML(t *testing.T) {
	svc, st := newChatbotFixture(false, nil)
	st.SetSnapshot(dto.MarketSnapshot{Assets: []dto.ScoredAsset{{Ticker: "AAPL", Score: 80, Recommendation: "STRONG BUY", Price: 190}}})

	resp, err := svc.Ask(context.Background(), "Give me an analysis of AAPL")
	require.NoError(t, err)
	assert.Equal(t, string(chatbot.CategoryAnalysis), resp.Category)
	assert.Equal(t, "AAPL", resp.Ticker)
	assert.Equal(t, SourceTemplate, resp.Source)
	assert.NotEmpty(t, resp.Response)
	assert.Contains(t, resp.ResponseHTML, "<")
	assert.False(t, resp.Timestamp.IsZero())
}

func TestChatbot_GeneralQuestionUsesGemini(t *testing.T) {
	ai := &fakeAI{answer: "**Stay diversified.**"}
	svc, _ := newChatbotFixture(true, ai)

	resp, err := svc.Ask(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Equal(t, string(chatbot.CategoryGeneral), resp.Category)
	assert.Equal(t, SourceGemini, resp.Source)
	assert.Equal(t, "**Stay diversified.**", resp.Response)
	assert.Contains(t, resp.ResponseHTML, "<strong>Stay diversified.</strong>")
	assert.Equal(t, []string{"hello there"}, ai.asked)
}

func TestChatbot_GeminiFailureFallsBack(t *testing.T) {
	ai := &fakeAI{err: errors.New("quota exceeded")}
	svc, _ := newChatbotFixture(true, ai)

	resp, err := svc.Ask(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, resp.Source)
	assert.Equal(t, chatbot.GeneralAnswer, resp.Response)
}

func TestChatbot_AIDisabledSkipsGemini(t *testing.T) {
	ai := &fakeAI{answer: "unused"}
	svc, _ := newChatbotFixture(false, ai)

	resp, err := svc.Ask(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Equal(t, SourceTemplate, resp.Source)
	assert.Empty(t, ai.asked)
}

func TestMarketContext(t *testing.T) {
	assert.Contains(t, MarketContext(nil, 5), "No analysis batch")
	ctx := MarketContext([]dto.ScoredAsset{{Ticker: "AAPL"}, {Ticker: "MSFT"}, {Ticker: "NVDA"}}, 2)
	assert.Contains(t, ctx, "3 assets analysed")
	assert.Contains(t, ctx, "MSFT")
	assert.NotContains(t, ctx, "NVDA")
}
