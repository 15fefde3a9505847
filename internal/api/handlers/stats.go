package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/dhima/attendance-ledger/internal/api/response"
	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/dhima/attendance-ledger/internal/models"
	"github.com/dhima/attendance-ledger/internal/stats"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const noEventsMessage = "no events recorded yet"

// StatsHandler serves attendance aggregation queries.
type StatsHandler struct {
	engine StatsQuerier
	logger logging.Logger
}

// NewStatsHandler creates a stats handler.
func NewStatsHandler(engine StatsQuerier, logger logging.Logger) *StatsHandler {
	return &StatsHandler{
		engine: engine,
		logger: logger.With(zap.String("handler", "stats")),
	}
}

// Percentage godoc
// @Summary Member attendance percentage
// @Description Share of all distinct ledger events the member attended. An empty ledger returns zeros with an informational message.
// @Tags Stats
// @Produce json
// @Param member path string true "Member display name (exact match)"
// @Success 200 {object} response.SuccessResponse{data=models.PercentageResult}
// @Failure 503 {object} response.ErrorResponse "Ledger unavailable"
// @Router /api/v1/members/{member}/percentage [get]
func (h *StatsHandler) Percentage(c *gin.Context) {
	member := c.Param("member")
	result, err := h.engine.Percentage(c.Request.Context(), member)
	if errors.Is(err, stats.ErrNoEventsRecorded) {
		response.Info(c, models.PercentageResult{Member: member}, noEventsMessage)
		return
	}
	if handleServiceError(c, h.logger, err, "attendance percentage", nil) {
		return
	}
	response.OK(c, result)
}

// MemberStats godoc
// @Summary Member attendance over time
// @Description Distinct events attended overall, in the last 15 days and in the current calendar month (UTC).
// @Tags Stats
// @Produce json
// @Param member path string true "Member display name (exact match)"
// @Param at query string false "Evaluate windows at this RFC 3339 instant instead of now"
// @Success 200 {object} response.SuccessResponse{data=models.WindowedStats}
// @Failure 400 {object} response.ErrorResponse "Invalid at parameter"
// @Failure 503 {object} response.ErrorResponse "Ledger unavailable"
// @Router /api/v1/members/{member}/stats [get]
func (h *StatsHandler) MemberStats(c *gin.Context) {
	now, ok := h.evaluationTime(c)
	if !ok {
		return
	}

	result, err := h.engine.TimeWindowedStats(c.Request.Context(), c.Param("member"), now)
	if handleServiceError(c, h.logger, err, "attendance stats", nil) {
		return
	}
	response.OK(c, result)
}

// Leaderboard godoc
// @Summary Attendance leaderboard
// @Description All members ranked by attendance percentage; ties are ordered by name.
// @Tags Stats
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=models.LeaderboardResponse}
// @Failure 503 {object} response.ErrorResponse "Ledger unavailable"
// @Router /api/v1/leaderboard [get]
func (h *StatsHandler) Leaderboard(c *gin.Context) {
	report, err := h.engine.LeaderboardReport(c.Request.Context(), h.engine.Now())
	if errors.Is(err, stats.ErrNoEventsRecorded) {
		report.Entries = []models.LeaderboardEntry{}
		response.Info(c, report, noEventsMessage)
		return
	}
	if handleServiceError(c, h.logger, err, "leaderboard", nil) {
		return
	}
	response.OK(c, report)
}

func (h *StatsHandler) evaluationTime(c *gin.Context) (time.Time, bool) {
	raw := strings.TrimSpace(c.Query("at"))
	if raw == "" {
		return h.engine.Now(), true
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		response.BadRequest(c, "invalid at parameter", "expected RFC 3339, e.g. 2025-11-05T10:30:00Z")
		return time.Time{}, false
	}
	return at.UTC(), true
}
