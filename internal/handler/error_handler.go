package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kanban-board-api/internal/response"
)

// handleServiceError maps service layer errors to appropriate HTTP responses.
// The error is attached to the gin context so the request logger records it.
func handleServiceError(c *gin.Context, err error) {
	_ = c.Error(err)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		statusCode := mapErrorCodeToHTTPStatus(appErr.Code)
		details := appErr.Details
		// store and internal details carry driver messages
		if statusCode >= http.StatusInternalServerError && statusCode != http.StatusServiceUnavailable {
			details = ""
		}
		response.SendErrorWithDetails(c, statusCode, appErr.Code, appErr.Message, details)
		return
	}

	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeConflict, response.ErrCodeAlreadyExists:
		return http.StatusConflict
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case response.ErrCodeForbidden:
		return http.StatusForbidden
	case response.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case response.ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
