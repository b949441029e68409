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

// AlertHandler handles HTTP requests for alerts.
type AlertHandler struct {
	alerts service.AlertService
	logger *logger.Logger
}

func NewAlertHandler(alerts service.AlertService, logger *logger.Logger) *AlertHandler {
	return &AlertHandler{alerts: alerts, logger: logger}
}

// RegisterRoutes registers the alert routes to the Echo group.
func (h *AlertHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetAlerts)
	g.POST("", h.CreateAlert)
	g.DELETE("", h.DeleteAlert)
}

// GetAlerts godoc
// @Summary List alerts
// @Tags alerts
// @Produce json
// @Success 200 {object} dto.AlertsResponse
// @Router /alerts [get]
func (h *AlertHandler) GetAlerts(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.AlertsResponse{Timestamp: utils.Now(), Alerts: h.alerts.List()})
}

// CreateAlert godoc
// @Summary Create an alert
// @Tags alerts
// @Accept json
// @Produce json
// @Param alert body dto.CreateAlertRequest true "Alert to create"
// @Success 200 {object} dto.CreateAlertResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /alerts [post]
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	var req dto.CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	alert := h.alerts.Create(req)
	h.logger.Info("Alert created",
		logger.IntField("id", alert.ID),
		logger.StringField("ticker", alert.Ticker),
		logger.StringField("type", alert.Type))
	return c.JSON(http.StatusOK, dto.CreateAlertResponse{Success: true, Alert: alert})
}

// DeleteAlert godoc
// @Summary Delete an alert
// @Tags alerts
// @Produce json
// @Param id query int true "Alert ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /alerts [delete]
func (h *AlertHandler) DeleteAlert(c echo.Context) error {
	id, err := strconv.Atoi(c.QueryParam("id"))
	if err != nil {
		return badRequest(c, "Invalid alert ID")
	}
	if err := h.alerts.Delete(id); err != nil {
		if errors.Is(err, dto.ErrAlertNotFound) {
			return errorJSON(c, http.StatusNotFound, "Alert not found")
		}
		return errorJSON(c, http.StatusInternalServerError, "Failed to delete alert")
	}
	return c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Alert deleted"})
}
