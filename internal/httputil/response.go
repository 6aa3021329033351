// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xenosis/employees/internal/errors"
	appValidation "github.com/xenosis/employees/internal/validation"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

var kindStatus = map[apperrors.Kind]int{
	apperrors.KindInvalidInput: http.StatusUnprocessableEntity,
	apperrors.KindNotFound:     http.StatusNotFound,
	apperrors.KindConflict:     http.StatusConflict,
	apperrors.KindUnauthorized: http.StatusUnauthorized,
	apperrors.KindForbidden:    http.StatusForbidden,
	apperrors.KindUnexpected:   http.StatusInternalServerError,
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON response.
//
// Not-found, conflict and forbidden errors carry client-safe messages and are
// echoed back. Anything unrecognized becomes a 500 with a generic message; the
// full error is only logged.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	kind := apperrors.KindOf(err)
	statusCode := kindStatus[kind]
	errorResponse := ErrorResponse{Error: string(kind), Message: err.Error()}

	switch kind {
	case apperrors.KindInvalidInput:
		var validationErr *appValidation.Error
		if apperrors.As(err, &validationErr) {
			errorResponse.Message = "One or more fields are invalid"
			errorResponse.Fields = validationErr.Fields
		}
	case apperrors.KindUnauthorized:
		errorResponse.Message = "Authentication is required"
	case apperrors.KindUnexpected:
		errorResponse.Message = "An internal error occurred"
	}

	if logger != nil {
		level := slog.LevelWarn
		if statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", errorResponse.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	errorResponse := ErrorResponse{
		Error:   "bad_request",
		Message: err.Error(),
	}

	c.JSON(http.StatusBadRequest, errorResponse)
}
