package api

import (
	"net/http"

	"github.com/its-mocha/portfolio-server/internal/service/api/handler/status"
	"github.com/its-mocha/portfolio-server/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers 라우트에 연결할 핸들러 묶음입니다.
type Handlers struct {
	System  *system.Handler
	Status  *status.Handler
	Metrics http.Handler
}

// RegisterRoutes API 서비스의 라우트를 등록합니다.
//
//   - 상태 프록시: GET /api/pihole
//   - 시스템: GET /health, GET /version
//   - 메트릭: GET /metrics (Prometheus)
//   - API 문서: GET /swagger/*
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/api/pihole", h.Status.GetStatusHandler)

	e.GET("/health", h.System.HealthCheckHandler)
	e.GET("/version", h.System.VersionHandler)

	if h.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.Metrics))
	}

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
