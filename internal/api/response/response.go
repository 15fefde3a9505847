package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuccessResponse represents a successful API response.
type SuccessResponse struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
} // @name SuccessResponse

// ErrorResponse represents an error API response.
type ErrorResponse struct {
	Error   string      `json:"error" example:"session not active"`
	Details interface{} `json:"details,omitempty"`
	TraceID string      `json:"trace_id,omitempty" example:"3f2b1c9e-8a4d-4d0e-9a51-2f7f0f0d2a11"`
} // @name ErrorResponse

// FieldError represents a single request field that failed validation.
type FieldError struct {
	Field   string `json:"field" example:"attendees"`
	Message string `json:"message" example:"Array must have at most 6 items"`
} // @name FieldError

// Success sends a successful response with data.
func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, SuccessResponse{
		Data:    data,
		Message: message,
	})
}

// OK sends a 200 OK response.
func OK(c *gin.Context, data interface{}) {
	Success(c, http.StatusOK, data, "")
}

// Info sends a 200 OK response whose message explains an empty or partial result.
func Info(c *gin.Context, data interface{}, message string) {
	Success(c, http.StatusOK, data, message)
}

// Error sends an error response tagged with the request's trace ID.
func Error(c *gin.Context, statusCode int, err string, details interface{}) {
	c.JSON(statusCode, ErrorResponse{
		Error:   err,
		Details: details,
		TraceID: GetRequestID(c),
	})
}

// BadRequest sends a 400 Bad Request response.
func BadRequest(c *gin.Context, err string, details interface{}) {
	Error(c, http.StatusBadRequest, err, details)
}

// FieldErrors sends a 400 Bad Request listing each invalid field.
func FieldErrors(c *gin.Context, errs []FieldError) {
	BadRequest(c, "validation failed", errs)
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, err string) {
	Error(c, http.StatusUnauthorized, err, nil)
}

// Forbidden sends a 403 Forbidden response.
func Forbidden(c *gin.Context, err string, details interface{}) {
	Error(c, http.StatusForbidden, err, details)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, err string) {
	Error(c, http.StatusInternalServerError, err, nil)
}

// ServiceUnavailable sends a 503 when the ledger backend cannot be reached.
func ServiceUnavailable(c *gin.Context, err string, details interface{}) {
	Error(c, http.StatusServiceUnavailable, err, details)
}

// GetRequestID retrieves the request ID set by the RequestID middleware.
// Outside that middleware a fresh ID is generated.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return uuid.New().String()
}
