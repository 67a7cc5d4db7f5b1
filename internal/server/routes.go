package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Menu decision pipeline
	s.echo.GET("/api/menu", s.handleListMenu)
	s.echo.GET("/api/menu/:slug", s.handleGetMenuItem)
	s.echo.GET("/api/menu/:slug/insight", s.handleMenuInsight)

	// Feedback intake
	s.echo.POST("/api/menu/:id/feedback", s.handleSubmitFeedback)
}
