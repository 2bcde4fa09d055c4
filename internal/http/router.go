package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "vetpost/backend/docs"
	"vetpost/backend/internal/handler"
)

func NewRouter(
	generateHandler *handler.GenerateHandler,
	healthHandler *handler.HealthHandler,
	gatherer prometheus.Gatherer,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	healthHandler.RegisterRoutes(e)

	api := e.Group("/api")
	generateHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
