package handlers

import (
	"github.com/dhima/attendance-ledger/internal/api/response"
	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/gin-gonic/gin"
)

const serviceName = "attendance-ledger"

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger  logging.Logger
	backend string
}

// NewHealthHandler creates a new health check handler. backend names the
// configured ledger store.
func NewHealthHandler(logger logging.Logger, backend string) *HealthHandler {
	return &HealthHandler{logger: logger, backend: backend}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status        string `json:"status" example:"ok"`
	Service       string `json:"service" example:"attendance-ledger"`
	Version       string `json:"version" example:"1.0.0"`
	LedgerBackend string `json:"ledger_backend" example:"sqlite"`
} // @name HealthResponse

// Health godoc
// @Summary Health check endpoint
// @Description Reports that the process is serving; does not probe the ledger
// @Tags System
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=HealthResponse}
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response.OK(c, HealthResponse{
		Status:        "ok",
		Service:       serviceName,
		Version:       "1.0.0",
		LedgerBackend: h.backend,
	})
}
