package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/service"
	"golang-stock-copilot/pkg/logger"
	"golang-stock-copilot/pkg/utils"
)

const defaultUrgentThreshold = 85

// MarketHandler serves the last analysed batch and the batch-level views derived from it.
type MarketHandler struct {
	market        service.MarketService
	opportunities service.OpportunityService
	news          service.NewsService
	refresher     service.RefreshScheduler
	logger        *logger.Logger
}

func NewMarketHandler(market service.MarketService, opportunities service.OpportunityService, news service.NewsService, refresher service.RefreshScheduler, logger *logger.Logger) *MarketHandler {
	return &MarketHandler{market: market, opportunities: opportunities, news: news, refresher: refresher, logger: logger}
}

// RegisterRoutes registers the market routes to the Echo group.
func (h *MarketHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/market-data", h.GetMarketData)
	g.GET("/urgent-signals", h.GetUrgentSignals)
	g.GET("/news", h.GetNews)
	g.GET("/search", h.Search)
	g.GET("/stats", h.GetStats)
	g.GET("/top-opportunities", h.GetTopOpportunities)
	g.GET("/refresh", h.Refresh)
	g.POST("/refresh", h.Refresh)
}

// GetMarketData godoc
// @Summary Last analysed batch
// @Tags market
// @Produce json
// @Success 200 {object} dto.MarketSnapshot
// @Failure 404 {object} dto.ErrorResponse
// @Router /market-data [get]
func (h *MarketHandler) GetMarketData(c echo.Context) error {
	snap, err := h.market.Snapshot()
	if err != nil {
		return errorJSON(c, http.StatusNotFound, "No data available")
	}
	return c.JSON(http.StatusOK, snap)
}

// GetUrgentSignals godoc
// @Summary Assets scoring at or above a threshold
// @Tags market
// @Produce json
// @Param threshold query number false "Minimum score" default(85)
// @Success 200 {object} dto.UrgentSignalsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /urgent-signals [get]
func (h *MarketHandler) GetUrgentSignals(c echo.Context) error {
	if _, err := h.market.Snapshot(); err != nil {
		return errorJSON(c, http.StatusNotFound, "No data available")
	}
	threshold := float64(defaultUrgentThreshold)
	if raw := c.QueryParam("threshold"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(c, "Invalid threshold")
		}
		threshold = v
	}
	return c.JSON(http.StatusOK, h.market.UrgentSignals(threshold))
}

// GetNews godoc
// @Summary Latest market news
// @Tags market
// @Produce json
// @Success 200 {object} dto.NewsResponse
// @Router /news [get]
func (h *MarketHandler) GetNews(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewsResponse{
		Timestamp: utils.Now(),
		News:      h.news.Latest(c.Request().Context()),
	})
}

// Search godoc
// @Summary Search tickers in the universe
// @Tags market
// @Produce json
// @Param q query string true "Ticker fragment"
// @Success 200 {object} dto.SearchResponse
// @Router /search [get]
func (h *MarketHandler) Search(c echo.Context) error {
	return c.JSON(http.StatusOK, h.market.Search(c.QueryParam("q")))
}

// GetStats godoc
// @Summary Batch statistics
// @Tags market
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /stats [get]
func (h *MarketHandler) GetStats(c echo.Context) error {
	stats, err := h.market.Stats()
	if err != nil {
		return errorJSON(c, http.StatusNotFound, "No data available")
	}
	return c.JSON(http.StatusOK, stats)
}

// GetTopOpportunities godoc
// @Summary Ranked trade ideas
// @Tags market
// @Produce json
// @Success 200 {object} dto.TopOpportunitiesResponse
// @Router /top-opportunities [get]
func (h *MarketHandler) GetTopOpportunities(c echo.Context) error {
	return c.JSON(http.StatusOK, h.opportunities.Top())
}

// Refresh godoc
// @Summary Run an analysis cycle now
// @Tags market
// @Produce json
// @Success 200 {object} dto.RefreshResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /refresh [get]
// @Router /refresh [post]
func (h *MarketHandler) Refresh(c echo.Context) error {
	snap, err := h.refresher.TriggerRefresh(c.Request().Context())
	if errors.Is(err, dto.ErrRefreshInProgress) {
		return errorJSON(c, http.StatusConflict, "Refresh already in progress")
	}
	if err != nil {
		h.logger.Error("Manual refresh failed", logger.ErrorField(err))
		return errorJSON(c, http.StatusInternalServerError, "Failed to refresh data")
	}
	return c.JSON(http.StatusOK, dto.RefreshResponse{
		Success:   true,
		Message:   "Data refreshed: " + strconv.Itoa(snap.TotalAnalyzed) + " assets analysed",
		Timestamp: snap.Timestamp,
	})
}
