// Package apierrors writes the JSON error bodies of the menu, order, agent and
// webhook endpoints.
package apierrors

import (
	"net/http"

	"voiceorder-server/internal/observability"

	"github.com/gin-gonic/gin"
)

var logger = observability.NewNopLogger()

// SetLogger routes error-response logging through the application logger.
func SetLogger(l *observability.Logger) {
	if l != nil {
		logger = l
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respond(c *gin.Context, statusCode int, code, message string) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: statusCode},
		observability.Field{Key: "error_code", Value: code},
	)
	if statusCode >= http.StatusInternalServerError {
		logger.Warn(ctx, "request failed")
	} else {
		logger.Info(observability.WithFields(ctx, observability.Field{Key: "error_message", Value: message}), "request rejected")
	}

	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// BadRequest rejects the client's input with a caller-chosen code.
func BadRequest(c *gin.Context, code, message string) {
	respond(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, "NOT_FOUND", message)
}

// InternalError logs err and answers with a fixed message; upstream details
// never reach the client.
func InternalError(c *gin.Context, err error) {
	logger.Error(c.Request.Context(), "internal error", err)
	respond(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred. Please try again later.")
}

// Unavailable reports that a backing dependency cannot be reached.
func Unavailable(c *gin.Context, dependency string, err error) {
	logger.Error(observability.WithFields(c.Request.Context(),
		observability.Field{Key: "dependency", Value: dependency},
	), "dependency unavailable", err)
	respond(c, http.StatusServiceUnavailable, "UNAVAILABLE", dependency+" is unavailable")
}
