package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-copilot/internal/copilot/config"
	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/scoring"
	"golang-stock-copilot/internal/copilot/service"
	"golang-stock-copilot/internal/copilot/store"
	"golang-stock-copilot/pkg/logger"
)

type stubAnalysis struct {
	asset   *dto.ScoredAsset
	chart   *dto.ChartResponse
	history []dto.SignalHistory
	err     error
}

func (s *stubAnalysis) RunCycle(ctx context.Context) (*dto.MarketSnapshot, error) {
	return nil, errors.New("not used")
}

func (s *stubAnalysis) AnalyzeTicker(ctx context.Context, ticker string) (*dto.ScoredAsset, error) {
	return s.asset, s.err
}

func (s *stubAnalysis) Chart(ctx context.Context, ticker, timeframe string) (*dto.ChartResponse, error) {
	return s.chart, s.err
}

func (s *stubAnalysis) History(ctx context.Context, ticker string, limit int) ([]dto.SignalHistory, error) {
	return s.history, s.err
}

type stubRefresher struct {
	snap *dto.MarketSnapshot
	err  error
}

func (s *stubRefresher) Start(ctx context.Context) {}

func (s *stubRefresher) TriggerRefresh(ctx context.Context) (*dto.MarketSnapshot, error) {
	return s.snap, s.err
}

func (s *stubRefresher) Running() bool { return false }

type stubNews struct{ items []dto.NewsItem }

func (s *stubNews) Latest(ctx context.Context) []dto.NewsItem { return s.items }

func (s *stubNews) Refresh(ctx context.Context) ([]dto.NewsItem, error) { return s.items, nil }

type stubMarketData struct{}

func (stubMarketData) GetHistory(ctx context.Context, p dto.GetHistoryParam) (*dto.MarketData, error) {
	return nil, dto.ErrNoMarketData
}

func (stubMarketData) GetQuote(ctx context.Context, ticker string) (*dto.Quote, error) {
	return &dto.Quote{Ticker: ticker, RegularMarketPrice: 200, CurrentPrice: 200}, nil
}

type fixture struct {
	e         *echo.Echo
	store     *store.Store
	analysis  *stubAnalysis
	refresher *stubRefresher
}

func newFixture() *fixture {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	log := logger.NewNop()
	st := store.New()

	analysis := &stubAnalysis{}
	refresher := &stubRefresher{}
	alerts := service.NewAlertService(cfg, st, nil, nil, log)
	opportunities := service.NewOpportunityService(st)

	h := Handlers{
		Market:    NewMarketHandler(service.NewMarketService(st, alerts), opportunities, &stubNews{items: []dto.NewsItem{{Title: "Fed holds"}}}, refresher, log),
		Asset:     NewAssetHandler(analysis, log),
		Portfolio: NewPortfolioHandler(service.NewPortfolioService(st, stubMarketData{}, log), log),
		Alert:     NewAlertHandler(alerts, log),
		Chatbot:   NewChatbotHandler(service.NewChatbotService(cfg, st, opportunities, nil, log), log),
		Health:    NewHealthHandler(refresher),
	}
	return &fixture{e: NewServer(h, "", log), store: st, analysis: analysis, refresher: refresher}
}

func (f *fixture) do(method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealth(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestMarketData_EmptyThenPopulated(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/api/market-data", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = f.do(http.MethodGet, "/api/stats", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = f.do(http.MethodGet, "/api/urgent-signals", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No data available", errorOf(t, rec))

	f.store.SetSnapshot(dto.MarketSnapshot{
		Timestamp:     time.Now(),
		TotalAnalyzed: 2,
		Assets: []dto.ScoredAsset{
			{Ticker: "NVDA", Score: 91, Recommendation: scoring.StrongBuy},
			{Ticker: "KO", Score: 50, Recommendation: scoring.Hold},
		},
	})

	rec = f.do(http.MethodGet, "/api/market-data", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var snap dto.MarketSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Len(t, snap.Assets, 2)

	rec = f.do(http.MethodGet, "/api/urgent-signals?threshold=90", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var urgent dto.UrgentSignalsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &urgent))
	assert.Equal(t, 1, urgent.Count)

	rec = f.do(http.MethodGet, "/api/urgent-signals?threshold=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats dto.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.StrongBuys)
}

func TestAsset_NotFound(t *testing.T) {
	f := newFixture()
	f.analysis.err = dto.ErrTickerNotFound

	rec := f.do(http.MethodGet, "/api/asset/zzzz", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Ticker not found", errorOf(t, rec))

	rec = f.do(http.MethodGet, "/api/ticker/zzzz", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodGet, "/api/chart/zzzz?timeframe=1m", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Chart data not available", errorOf(t, rec))
}

func TestAsset_Found(t *testing.T) {
	f := newFixture()
	f.analysis.asset = &dto.ScoredAsset{Ticker: "AAPL", Score: 72}
	f.analysis.history = []dto.SignalHistory{{Ticker: "AAPL", Score: 70}}

	rec := f.do(http.MethodGet, "/api/asset/aapl", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ticker":"AAPL"`)

	rec = f.do(http.MethodGet, "/api/asset/aapl/history?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []dto.SignalHistory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	assert.Len(t, history, 1)

	rec = f.do(http.MethodGet, "/api/asset/aapl/history?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefresh(t *testing.T) {
	f := newFixture()
	f.refresher.snap = &dto.MarketSnapshot{TotalAnalyzed: 30, Timestamp: time.Now()}

	rec := f.do(http.MethodPost, "/api/refresh", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "30 assets")

	rec = f.do(http.MethodGet, "/api/refresh", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "30 assets")

	f.refresher.err = dto.ErrRefreshInProgress
	rec = f.do(http.MethodPost, "/api/refresh", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	f.refresher.err = errors.New("boom")
	rec = f.do(http.MethodPost, "/api/refresh", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPortfolio_Actions(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPost, "/api/portfolio", map[string]interface{}{"action": "add_position", "ticker": "aapl"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", errorOf(t, rec))

	rec = f.do(http.MethodPost, "/api/portfolio", map[string]interface{}{"action": "sell_everything"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid action", errorOf(t, rec))

	rec = f.do(http.MethodPost, "/api/portfolio", map[string]interface{}{"ticker": "AAPL"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", errorOf(t, rec))

	rec = f.do(http.MethodPost, "/api/portfolio", map[string]interface{}{"action": "add_position", "ticker": "aapl", "shares": 10, "price": 150})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/portfolio", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p dto.Portfolio
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.Len(t, p.Positions, 1)
	assert.Equal(t, "AAPL", p.Positions[0].Ticker)
	assert.Equal(t, 200.0, p.Positions[0].CurrentPrice)
}

func TestPortfolio_Import(t *testing.T) {
	f := newFixture()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "export.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("Instrument,Quantity,Average price,Current price\nAAPL,10,150,160\nMSFT,5,300,310\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/import", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.PortfolioImportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Imported)

	missing := httptest.NewRequest(http.MethodPost, "/api/portfolio/import", strings.NewReader(""))
	rec = httptest.NewRecorder()
	f.e.ServeHTTP(rec, missing)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAlerts_Lifecycle(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPost, "/api/alerts", map[string]interface{}{"ticker": "NVDA", "type": "price_sideways", "threshold": 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/api/alerts", map[string]interface{}{"type": "price_above", "threshold": 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", errorOf(t, rec))

	rec = f.do(http.MethodPost, "/api/alerts", map[string]interface{}{"ticker": "nvda", "type": "price_above", "threshold": 100})
	require.Equal(t, http.StatusOK, rec.Code)
	var created dto.CreateAlertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "NVDA", created.Alert.Ticker)
	assert.Equal(t, 1, created.Alert.ID)

	rec = f.do(http.MethodGet, "/api/alerts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list dto.AlertsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Alerts, 1)

	rec = f.do(http.MethodDelete, "/api/alerts?id=1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(http.MethodDelete, "/api/alerts?id=1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = f.do(http.MethodDelete, "/api/alerts?id=x", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatbot(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPost, "/api/chatbot", map[string]string{"question": " "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No question provided", errorOf(t, rec))

	rec = f.do(http.MethodPost, "/api/chatbot", map[string]string{"question": "What are the best picks?"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ChatbotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Response)
	assert.NotEmpty(t, resp.ResponseHTML)
}

func TestNewsSearchAndOpportunities(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/api/news", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fed holds")

	rec = f.do(http.MethodGet, "/api/search?q=nvd", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ticker":"NVDA"`)

	rec = f.do(http.MethodGet, "/api/top-opportunities", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var top dto.TopOpportunitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &top))
	assert.True(t, top.Fallback)
	assert.NotEmpty(t, top.Opportunities)
}

func TestErrorHandler_JSONBody(t *testing.T) {
	f := newFixture()
	f.e.GET("/api/panics", func(c echo.Context) error {
		panic("kaboom")
	})

	rec := f.do(http.MethodGet, "/api/panics", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", errorOf(t, rec))
	assert.NotContains(t, rec.Body.String(), `"message"`)

	rec = f.do(http.MethodGet, "/api/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", errorOf(t, rec))

	rec = f.do(http.MethodPut, "/api/alerts", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method Not Allowed", errorOf(t, rec))

	rec = f.do(http.MethodHead, "/api/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
