package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dhima/attendance-ledger/internal/api/response"
	"github.com/dhima/attendance-ledger/internal/checkin"
	"github.com/dhima/attendance-ledger/internal/logging"
	"github.com/dhima/attendance-ledger/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

// checkInSchema is the JSON schema every check-in body must satisfy.
var checkInSchema = fmt.Sprintf(`{
	"type": "object",
	"required": ["event", "recorded_by", "evidence_ref", "attendees"],
	"additionalProperties": false,
	"properties": {
		"scope":         {"type": "string", "maxLength": 256},
		"event":         {"type": "string", "minLength": 1, "maxLength": 256},
		"recorded_by":   {"type": "string", "minLength": 1, "maxLength": 256},
		"evidence_ref":  {"type": "string", "minLength": 1, "maxLength": 2048},
		"evidence_name": {"type": "string", "maxLength": 256},
		"attendees": {
			"type": "array",
			"minItems": 1,
			"maxItems": %d,
			"items": {"type": "string", "maxLength": 256}
		}
	}
}`, models.MaxAttendeesPerCheckIn)

// CheckInHandler handles check-in submissions.
type CheckInHandler struct {
	recorder CheckInRecorder
	schema   *gojsonschema.Schema
	logger   logging.Logger
}

// NewCheckInHandler creates a check-in handler. It fails only if the
// embedded request schema does not compile.
func NewCheckInHandler(recorder CheckInRecorder, logger logging.Logger) (*CheckInHandler, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(checkInSchema))
	if err != nil {
		return nil, fmt.Errorf("compile check-in schema: %w", err)
	}
	return &CheckInHandler{
		recorder: recorder,
		schema:   schema,
		logger:   logger.With(zap.String("handler", "checkin")),
	}, nil
}

// CheckIn godoc
// @Summary Record attendance
// @Description Credits each attendee for the event unless already credited. Outcomes are returned per attendee in request order.
// @Tags Check-ins
// @Accept json
// @Produce json
// @Param checkin body models.CheckInRequest true "Check-in submission (1 to 6 attendees)"
// @Success 200 {object} response.SuccessResponse{data=models.CheckInResponse}
// @Failure 400 {object} response.ErrorResponse "Invalid body or attendee list"
// @Failure 403 {object} response.ErrorResponse "Check-ins are not active for this scope"
// @Failure 503 {object} response.ErrorResponse "Ledger unavailable; details hold outcomes recorded before the failure"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/v1/checkins [post]
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}

	result, err := h.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		h.logger.Warn("check-in body is not valid JSON",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	if !result.Valid() {
		fieldErrs := make([]response.FieldError, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			fieldErrs = append(fieldErrs, response.FieldError{Field: desc.Field(), Message: desc.Description()})
		}
		h.logger.Warn("check-in schema validation failed",
			zap.Int("errors", len(fieldErrs)),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.FieldErrors(c, fieldErrs)
		return
	}

	var req models.CheckInRequest
	if err := json.Unmarshal(body, &req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}

	outcomes, err := h.recorder.CheckIn(c.Request.Context(), req)
	if err != nil {
		var partial interface{}
		if len(outcomes) > 0 {
			partial = checkin.NewResponse(req, outcomes)
		}
		handleServiceError(c, h.logger, err, "check-in", partial)
		return
	}

	resp := checkin.NewResponse(req, outcomes)
	h.logger.Info("check-in recorded",
		zap.String("event", resp.Event),
		zap.Int("recorded", resp.Recorded),
		zap.Int("duplicates", resp.Duplicates),
		zap.String("request_id", response.GetRequestID(c)),
	)
	response.Success(c, http.StatusOK, resp, fmt.Sprintf("%d recorded, %d already present", resp.Recorded, resp.Duplicates))
}
