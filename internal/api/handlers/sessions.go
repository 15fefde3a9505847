package handlers

import (
	"strings"

	"github.com/dhima/attendance-ledger/internal/api/middleware"
	"github.com/dhima/attendance-ledger/internal/api/response"
	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/dhima/attendance-ledger/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler opens, closes and reports check-in scopes.
type SessionHandler struct {
	registry SessionRegistry
	logger   logging.Logger
}

// NewSessionHandler creates a session handler.
func NewSessionHandler(registry SessionRegistry, logger logging.Logger) *SessionHandler {
	return &SessionHandler{
		registry: registry,
		logger:   logger.With(zap.String("handler", "sessions")),
	}
}

// Activate godoc
// @Summary Open check-ins for a scope
// @Description Idempotent. Requires an admin bearer token.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param scope path string true "Activation scope, usually the event name"
// @Success 200 {object} response.SuccessResponse{data=models.SessionStatus}
// @Failure 400 {object} response.ErrorResponse "Blank scope"
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Router /api/v1/sessions/{scope}/activate [post]
func (h *SessionHandler) Activate(c *gin.Context) {
	scope, ok := scopeParam(c)
	if !ok {
		return
	}
	changed := h.registry.Activate(scope)
	h.logger.Info("check-in session activated",
		zap.String("scope", scope),
		zap.Bool("changed", changed),
		zap.String("actor", c.GetString(middleware.ActorKey)),
		zap.String("request_id", response.GetRequestID(c)),
	)
	response.OK(c, models.SessionStatus{Scope: scope, Active: true, Changed: changed})
}

// Deactivate godoc
// @Summary Close check-ins for a scope
// @Description Idempotent. Requires an admin bearer token.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param scope path string true "Activation scope"
// @Success 200 {object} response.SuccessResponse{data=models.SessionStatus}
// @Failure 400 {object} response.ErrorResponse "Blank scope"
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} response.ErrorResponse "Not an admin"
// @Router /api/v1/sessions/{scope}/deactivate [post]
func (h *SessionHandler) Deactivate(c *gin.Context) {
	scope, ok := scopeParam(c)
	if !ok {
		return
	}
	changed := h.registry.Deactivate(scope)
	h.logger.Info("check-in session deactivated",
		zap.String("scope", scope),
		zap.Bool("changed", changed),
		zap.String("actor", c.GetString(middleware.ActorKey)),
		zap.String("request_id", response.GetRequestID(c)),
	)
	response.OK(c, models.SessionStatus{Scope: scope, Active: false, Changed: changed})
}

// List godoc
// @Summary List active scopes
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=models.SessionList}
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Router /api/v1/sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	response.OK(c, models.SessionList{Scopes: h.registry.Active()})
}

// Status godoc
// @Summary Check whether a scope accepts check-ins
// @Tags Sessions
// @Produce json
// @Param scope path string true "Activation scope"
// @Success 200 {object} response.SuccessResponse{data=models.SessionStatus}
// @Router /api/v1/sessions/{scope} [get]
func (h *SessionHandler) Status(c *gin.Context) {
	scope, ok := scopeParam(c)
	if !ok {
		return
	}
	response.OK(c, models.SessionStatus{Scope: scope, Active: h.registry.IsActive(scope)})
}

func scopeParam(c *gin.Context) (string, bool) {
	scope := strings.TrimSpace(c.Param("scope"))
	if scope == "" {
		response.BadRequest(c, "scope is required", nil)
		return "", false
	}
	return scope, true
}
