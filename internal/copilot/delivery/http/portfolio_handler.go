package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/service"
	"golang-stock-copilot/pkg/logger"
)

const maxImportSize = 5 << 20

// PortfolioHandler handles HTTP requests for the portfolio.
type PortfolioHandler struct {
	portfolio service.PortfolioService
	logger    *logger.Logger
}

func NewPortfolioHandler(portfolio service.PortfolioService, logger *logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio, logger: logger}
}

// RegisterRoutes registers the portfolio routes to the Echo group.
func (h *PortfolioHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetPortfolio)
	g.POST("", h.UpdatePortfolio)
	g.POST("/import", h.ImportPortfolio)
}

// GetPortfolio godoc
// @Summary Portfolio with live prices
// @Tags portfolio
// @Produce json
// @Success 200 {object} dto.Portfolio
// @Router /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	p, err := h.portfolio.RefreshPrices(c.Request().Context())
	if err != nil {
		h.logger.Warn("Serving portfolio without live prices", logger.ErrorField(err))
		p = h.portfolio.Get()
	}
	return c.JSON(http.StatusOK, p)
}

// UpdatePortfolio godoc
// @Summary Add or remove a position
// @Tags portfolio
// @Accept json
// @Produce json
// @Param request body dto.PortfolioActionRequest true "Portfolio action"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /portfolio [post]
func (h *PortfolioHandler) UpdatePortfolio(c echo.Context) error {
	var req dto.PortfolioActionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	resp, err := h.portfolio.Apply(c.Request().Context(), req)
	switch {
	case errors.Is(err, dto.ErrMissingFields):
		return badRequest(c, "Missing required fields")
	case errors.Is(err, dto.ErrInvalidAction):
		return badRequest(c, "Invalid action")
	case err != nil:
		h.logger.Error("Failed to update portfolio", logger.ErrorField(err))
		return errorJSON(c, http.StatusInternalServerError, "Failed to update portfolio")
	}
	return c.JSON(http.StatusOK, resp)
}

// ImportPortfolio godoc
// @Summary Replace the portfolio with a broker CSV export
// @Tags portfolio
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV export"
// @Success 200 {object} dto.PortfolioImportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /portfolio/import [post]
func (h *PortfolioHandler) ImportPortfolio(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file uploaded")
	}
	if fh.Size > maxImportSize {
		return badRequest(c, "File too large")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "Unable to read uploaded file")
	}
	defer f.Close()

	resp, err := h.portfolio.Import(c.Request().Context(), f)
	if err != nil {
		h.logger.Warn("Portfolio import rejected", logger.StringField("filename", fh.Filename), logger.ErrorField(err))
		return badRequest(c, "Invalid CSV: "+err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}
