package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dsarhan/fx_reval_app/internal/apperrors"
	portssvc "github.com/dsarhan/fx_reval_app/internal/core/ports/services"
	"github.com/dsarhan/fx_reval_app/internal/dto"
	"github.com/dsarhan/fx_reval_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// revaluationHandler handles HTTP requests for unrealized FX revaluation sessions
type revaluationHandler struct {
	revaluationService portssvc.RevaluationSvc
}

// newRevaluationHandler creates a new revaluationHandler
func newRevaluationHandler(rs portssvc.RevaluationSvc) *revaluationHandler {
	return &revaluationHandler{
		revaluationService: rs,
	}
}

// registerRevaluationRoutes registers routes for revaluation sessions
func registerRevaluationRoutes(rg *gin.RouterGroup, revaluationService portssvc.RevaluationSvc, rateLimit gin.HandlerFunc) {
	h := newRevaluationHandler(revaluationService)

	sessionGroup := rg.Group("/revaluation/sessions", rateLimit)
	{
		sessionGroup.POST("", h.createSession)
		sessionGroup.GET("/:session_id", h.getSession)
		sessionGroup.POST("/:session_id/recompute", h.recompute)
	}
}

// createSession godoc
// @Summary Create a revaluation session
// @Description Starts a new empty unrealized FX revaluation session
// @Tags revaluation
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Router /revaluation/sessions [post]
func (h *revaluationHandler) createSession(c *gin.Context) {
	snap := h.revaluationService.CreateSession(c.Request.Context())
	c.JSON(http.StatusCreated, dto.ToSessionResponse(snap))
}

// getSession godoc
// @Summary Get a revaluation session
// @Description Returns the session's current state, parameters, computed lines and total adjustment
// @Tags revaluation
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /revaluation/sessions/{session_id} [get]
func (h *revaluationHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	sessionID := c.Param("session_id")

	snap, err := h.revaluationService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Revaluation session not found"})
			return
		}
		logger.Error("Failed to get revaluation session", slog.String("session_id", sessionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get revaluation session"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(snap))
}

// recompute godoc
// @Summary Recompute a revaluation session
// @Description Discards previously computed lines and rebuilds the full line set for the given parameters
// @Tags revaluation
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body dto.RecomputeRequest true "Report parameters"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Session or company not found"
// @Failure 422 {object} dto.SessionResponse "Recompute failed (e.g. missing rate)"
// @Failure 500 {object} map[string]string "Ledger store unreachable"
// @Router /revaluation/sessions/{session_id}/recompute [post]
func (h *revaluationHandler) recompute(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	sessionID := c.Param("session_id")

	var req dto.RecomputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid recompute request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	params, err := req.ToReportParameters()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report date. Use YYYY-MM-DD"})
		return
	}

	logger = logger.With(
		slog.String("session_id", sessionID),
		slog.String("company_id", params.CompanyID),
		slog.String("report_date", params.ReportDate.Format("2006-01-02")),
	)
	logger.Info("Received revaluation recompute request")

	snap, err := h.revaluationService.Recompute(c.Request.Context(), sessionID, params)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrRateUnavailable):
			// The session is now FAILED; surface its descriptor rather than a
			// bare error so the caller sees the session state it will read back.
			logger.Warn("Recompute failed: exchange rate unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, dto.ToSessionResponse(snap))
		default:
			logger.Error("Recompute failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute revaluation report"})
		}
		return
	}

	logger.Info("Revaluation recompute completed", slog.Int("line_count", len(snap.Lines)))
	c.JSON(http.StatusOK, dto.ToSessionResponse(snap))
}
