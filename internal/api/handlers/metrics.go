package handlers

import (
	"github.com/dhima/attendance-ledger/internal/api/response"
	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MetricsHandler handles metrics requests.
type MetricsHandler struct {
	ledger   LedgerSummarizer
	sessions SessionRegistry
	logger   logging.Logger
}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler(ledger LedgerSummarizer, sessions SessionRegistry, logger logging.Logger) *MetricsHandler {
	return &MetricsHandler{
		ledger:   ledger,
		sessions: sessions,
		logger:   logger.With(zap.String("handler", "metrics")),
	}
}

// MetricsResponse represents the metrics response.
type MetricsResponse struct {
	LedgerRows      int `json:"ledger_rows" example:"340"`
	DistinctEvents  int `json:"distinct_events" example:"28"`
	DistinctMembers int `json:"distinct_members" example:"41"`
	ActiveSessions  int `json:"active_sessions" example:"2"`
} // @name MetricsResponse

// Metrics godoc
// @Summary Get ledger metrics
// @Description Row and distinct-key counts read from the ledger, plus open check-in sessions
// @Tags System
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=MetricsResponse}
// @Failure 503 {object} response.ErrorResponse "Ledger unavailable"
// @Router /metrics [get]
func (h *MetricsHandler) Metrics(c *gin.Context) {
	summary, err := h.ledger.Summary(c.Request.Context())
	if handleServiceError(c, h.logger, err, "ledger metrics", nil) {
		return
	}

	response.OK(c, MetricsResponse{
		LedgerRows:      summary.Rows,
		DistinctEvents:  summary.DistinctEvents,
		DistinctMembers: summary.DistinctMembers,
		ActiveSessions:  len(h.sessions.Active()),
	})
}
