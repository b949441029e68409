package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/service"
	"golang-stock-copilot/pkg/logger"
)

const defaultHistoryLimit = 50

// AssetHandler serves live single-ticker analysis.
type AssetHandler struct {
	analysis service.AnalysisService
	logger   *logger.Logger
}

func NewAssetHandler(analysis service.AnalysisService, logger *logger.Logger) *AssetHandler {
	return &AssetHandler{analysis: analysis, logger: logger}
}

// RegisterRoutes registers the asset routes to the Echo group.
func (h *AssetHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/asset/:ticker", h.GetAsset)
	g.GET("/ticker/:ticker", h.GetAsset)
	g.GET("/asset/:ticker/history", h.GetHistory)
	g.GET("/chart/:ticker", h.GetChart)
}

func tickerParam(c echo.Context) string {
	return strings.ToUpper(strings.TrimSpace(c.Param("ticker")))
}

// GetAsset godoc
// @Summary Analyse one ticker live
// @Tags assets
// @Produce json
// @Param ticker path string true "Ticker symbol"
// @Success 200 {object} dto.ScoredAsset
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /asset/{ticker} [get]
func (h *AssetHandler) GetAsset(c echo.Context) error {
	ticker := tickerParam(c)
	asset, err := h.analysis.AnalyzeTicker(c.Request().Context(), ticker)
	if errors.Is(err, dto.ErrTickerNotFound) {
		return errorJSON(c, http.StatusNotFound, "Ticker not found")
	}
	if err != nil {
		h.logger.Error("Failed to analyse ticker", logger.StringField("ticker", ticker), logger.ErrorField(err))
		return errorJSON(c, http.StatusInternalServerError, "Failed to analyse ticker")
	}
	return c.JSON(http.StatusOK, asset)
}

// GetChart godoc
// @Summary OHLCV chart for a ticker
// @Tags assets
// @Produce json
// @Param ticker path string true "Ticker symbol"
// @Param timeframe query string false "1d, 1w, 1m, 3m, 6m, 1y" default(1m)
// @Success 200 {object} dto.ChartResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /chart/{ticker} [get]
func (h *AssetHandler) GetChart(c echo.Context) error {
	ticker := tickerParam(c)
	chart, err := h.analysis.Chart(c.Request().Context(), ticker, c.QueryParam("timeframe"))
	if err != nil {
		h.logger.Warn("Chart unavailable", logger.StringField("ticker", ticker), logger.ErrorField(err))
		return errorJSON(c, http.StatusNotFound, "Chart data not available")
	}
	return c.JSON(http.StatusOK, chart)
}

// GetHistory godoc
// @Summary Persisted scoring history of a ticker
// @Tags assets
// @Produce json
// @Param ticker path string true "Ticker symbol"
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {array} dto.SignalHistory
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /asset/{ticker}/history [get]
func (h *AssetHandler) GetHistory(c echo.Context) error {
	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return badRequest(c, "Invalid limit")
		}
		limit = v
	}
	ticker := tickerParam(c)
	history, err := h.analysis.History(c.Request().Context(), ticker, limit)
	if err != nil {
		h.logger.Error("Failed to load signal history", logger.StringField("ticker", ticker), logger.ErrorField(err))
		return errorJSON(c, http.StatusInternalServerError, "Failed to load history")
	}
	return c.JSON(http.StatusOK, history)
}
