package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"golang-stock-copilot/internal/copilot/service"
	"golang-stock-copilot/pkg/utils"
)

type HealthResponse struct {
	Status     string `json:"status"`
	Refreshing bool   `json:"refreshing"`
	Timestamp  string `json:"timestamp"`
}

// HealthHandler reports liveness.
type HealthHandler struct {
	refresher service.RefreshScheduler
}

func NewHealthHandler(refresher service.RefreshScheduler) *HealthHandler {
	return &HealthHandler{refresher: refresher}
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:     "ok",
		Refreshing: h.refresher != nil && h.refresher.Running(),
		Timestamp:  utils.Now().Format(time.RFC3339),
	})
}
