package handlers

import (
	"errors"

	"github.com/dhima/attendance-ledger/internal/api/response"
	"github.com/dhima/attendance-ledger/internal/checkin"
	"github.com/dhima/attendance-ledger/internal/ledger"
	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleServiceError writes the HTTP response for err and reports whether
// one was written. details, if non-nil, is attached to the error body.
func handleServiceError(c *gin.Context, logger logging.Logger, err error, operation string, details interface{}) bool {
	if err == nil {
		return false
	}

	var validationErr checkin.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.BadRequest(c, "validation failed", validationErr.Error())
	case errors.Is(err, checkin.ErrNoAttendeesSpecified), errors.Is(err, checkin.ErrTooManyAttendees):
		response.BadRequest(c, err.Error(), details)
	case errors.Is(err, checkin.ErrSessionNotActive):
		response.Forbidden(c, err.Error(), "an administrator must activate check-ins for this scope")
	case errors.Is(err, ledger.ErrStoreUnavailable):
		logger.Error(operation+" failed, ledger unavailable",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.ServiceUnavailable(c, "ledger unavailable", details)
	default:
		logger.Error(operation+" failed",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.InternalServerError(c, "internal server error")
	}
	return true
}
