package http

import (
	"log/slog"

	_ "laborders/internal/adapters/in/http/docs"
	"laborders/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance with every route and middleware.
// registry receives the request metrics and is exposed on /metrics.
func NewRouter(server *Server, tokens ports.TokenIssuer, registry *prometheus.Registry, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	metrics := NewMetrics(registry)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger.With("component", "http")))
	e.Use(middleware.CORS())
	e.Use(metrics.Middleware())
	e.Use(Auth(tokens))

	e.GET("/", server.Root)
	e.GET("/health", server.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/auth/register", server.Register)
	e.POST("/auth/login", server.Login)

	e.POST("/orders", server.CreateOrder)
	e.GET("/orders", server.ListOrders)
	e.GET("/orders/:id", server.GetOrder)
	e.PATCH("/orders/:id/state", server.PatchOrderState)

	e.RouteNotFound("/*", NotFound)

	return e
}
