package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"golang-stock-copilot/internal/copilot/config"
	"golang-stock-copilot/pkg/logger"
)

// ErrEmptyCompletion is returned when the model answers with no text.
var ErrEmptyCompletion = errors.New("empty completion")

// AIRepository answers free-form questions with a language model.
type AIRepository interface {
	Answer(ctx context.Context, question, marketContext string) (string, error)
}

type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGenAIClient builds the Gemini API client from configuration.
func NewGenAIClient(ctx context.Context, cfg *config.Config) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.AI.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}
	return client, nil
}

// NewGeminiAIRepository creates a Gemini backed AIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) AIRepository {
	perMinute := cfg.AI.Gemini.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 10
	}
	secondsPerRequest := time.Minute / time.Duration(perMinute)

	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
		genAiClient:    genAiClient,
	}
}

func (r *geminiAIRepository) Answer(ctx context.Context, question, marketContext string) (string, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	prompt := BuildChatPrompt(question, marketContext)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}
	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.AI.Gemini.Model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.4)),
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to generate Gemini answer", logger.ErrorField(err))
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyCompletion
	}
	r.logger.DebugContext(ctx, "Gemini answer received", logger.IntField("length", len(text)))
	return text, nil
}

// BuildChatPrompt frames a user question with the current market summary.
func BuildChatPrompt(question, marketContext string) string {
	var b strings.Builder
	b.WriteString("You are a trading copilot for a retail investor. Answer in concise markdown, ")
	b.WriteString("at most 250 words. Do not promise returns and end with a one-line risk reminder.\n\n")
	if marketContext != "" {
		b.WriteString("Current market context:\n")
		b.WriteString(marketContext)
		b.WriteString("\n\n")
	}
	b.WriteString("Question: ")
	b.WriteString(strings.TrimSpace(question))
	return b.String()
}
