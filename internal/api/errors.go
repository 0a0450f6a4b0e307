package api

import (
	"github.com/gin-gonic/gin"

	"github.com/HenrikBaltazar/linked-list-graph/internal/command"
	"github.com/HenrikBaltazar/linked-list-graph/internal/httputil"
	"github.com/HenrikBaltazar/linked-list-graph/internal/metrics"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest  = httputil.CodeInvalidRequest
	ErrCodeNotFound        = "not_found"
	ErrCodePayloadTooLarge = httputil.CodePayloadTooLarge
	ErrCodeUnknownCommand  = command.CodeUnknownCommand
	ErrCodeInternalError   = command.CodeInternalError
)

// respondError writes a standardized JSON error response, pulling the request
// ID from the Gin context (set by the request ID middleware).
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}
