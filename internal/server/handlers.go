package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Shravani253/Ai-food-menu/internal/domain"
	apperrors "github.com/Shravani253/Ai-food-menu/internal/errors"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleListMenu(c echo.Context) error {
	evaluations, err := s.app.ListMenu(c.Request().Context())
	if err != nil {
		return mapPipelineError(err, "")
	}

	if err := c.JSON(http.StatusOK, evaluations); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleGetMenuItem(c echo.Context) error {
	slug := c.Param("slug")
	if strings.TrimSpace(slug) == "" {
		return apperrors.ValidationError("slug must not be empty")
	}

	eval, err := s.app.EvaluateMenuItem(c.Request().Context(), slug)
	if err != nil {
		return mapPipelineError(err, slug)
	}

	if err := c.JSON(http.StatusOK, eval); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleMenuInsight(c echo.Context) error {
	slug := c.Param("slug")
	if strings.TrimSpace(slug) == "" {
		return apperrors.ValidationError("slug must not be empty")
	}

	insight, err := s.app.MenuInsight(c.Request().Context(), slug)
	if err != nil {
		return mapPipelineError(err, slug)
	}

	if err := c.JSON(http.StatusOK, insight); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

type feedbackRequest struct {
	Text string `json:"text"`
}

type feedbackResponse struct {
	Status   string                `json:"status"`
	Analysis domain.FeedbackSignal `json:"analysis"`
}

func (s *Server) handleSubmitFeedback(c echo.Context) error {
	menuID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.ValidationError("invalid menu id").WithField("id", c.Param("id"))
	}

	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	signal, err := s.app.SubmitFeedback(c.Request().Context(), menuID, req.Text)
	if err != nil {
		return apperrors.InternalError("failed to process feedback", err).WithField("menu_id", menuID)
	}

	if err := c.JSON(http.StatusOK, feedbackResponse{Status: "ok", Analysis: signal}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleLiveness(c echo.Context) error {
	if err := c.JSON(http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleReadiness(c echo.Context) error {
	ctx := c.Request().Context()

	checks := map[string]string{"postgres": "ok"}
	healthy := true

	if err := s.db.Ping(ctx); err != nil {
		checks["postgres"] = err.Error()
		healthy = false
	}

	if s.redis != nil {
		checks["redis"] = "ok"
		if err := s.redis.Ping(ctx); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		}
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}

	if err := c.JSON(status, map[string]any{"healthy": healthy, "checks": checks}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

// mapPipelineError translates pipeline failures into structured HTTP errors.
// NotFound is client-visible; store unavailability is a server-side failure
// with no retry inside the pipeline.
func mapPipelineError(err error, slug string) error {
	switch {
	case errors.Is(err, domain.ErrMenuItemNotFound):
		return apperrors.NotFoundError("menu item not found").WithField("slug", slug)
	case errors.Is(err, domain.ErrStoreUnavailable):
		return apperrors.UnavailableError("record store unavailable", err)
	default:
		return apperrors.InternalError("menu evaluation failed", err)
	}
}
