package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	swagger "github.com/swaggo/echo-swagger"

	"golang-stock-copilot/pkg/logger"
)

// Handlers groups every HTTP handler of the service.
type Handlers struct {
	Market    *MarketHandler
	Asset     *AssetHandler
	Portfolio *PortfolioHandler
	Alert     *AlertHandler
	Chatbot   *ChatbotHandler
	Health    *HealthHandler
}

// NewServer builds the Echo instance with middleware and all routes under /api.
// staticDir, when set, is served at the root.
func NewServer(h Handlers, staticDir string, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = errorHandler(log)

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Debug("HTTP request",
				logger.StringField("method", v.Method),
				logger.StringField("uri", v.URI),
				logger.IntField("status", v.Status),
				logger.DurationField("latency", v.Latency))
			return nil
		},
	}))

	api := e.Group("/api")
	h.Market.RegisterRoutes(api)
	h.Asset.RegisterRoutes(api)
	h.Chatbot.RegisterRoutes(api)
	h.Portfolio.RegisterRoutes(api.Group("/portfolio"))
	h.Alert.RegisterRoutes(api.Group("/alerts"))

	e.GET("/health", h.Health.Health)
	e.GET("/swagger/*", swagger.WrapHandler)

	if staticDir != "" {
		e.Static("/", staticDir)
	}
	return e
}

// errorHandler renders every unhandled error, including router misses and
// recovered panics, as {"error": "..."}.
func errorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := http.StatusText(status)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			msg = http.StatusText(status)
			if m, ok := he.Message.(string); ok && m != "" {
				msg = m
			}
		}
		if status >= http.StatusInternalServerError {
			log.Error("HTTP request failed",
				logger.StringField("method", c.Request().Method),
				logger.StringField("uri", c.Request().RequestURI),
				logger.ErrorField(err))
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = errorJSON(c, status, msg)
		}
		if werr != nil {
			log.Warn("failed to write error response", logger.ErrorField(werr))
		}
	}
}
