package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Error codes. Each code is one branch of the service error taxonomy and
// maps to exactly one HTTP status in the handler layer.
const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeAlreadyExists      = "ALREADY_EXISTS"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeStoreFailure       = "STORE_FAILURE"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// AppError is the error type returned by every service operation
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewNotFoundError creates a NOT_FOUND AppError
func NewNotFoundError(message, details string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details)
}

// NewForbiddenError creates a FORBIDDEN AppError
func NewForbiddenError(message, details string) *AppError {
	return NewAppError(ErrCodeForbidden, message, details)
}

// NewUnauthorizedError creates an UNAUTHORIZED AppError
func NewUnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, "")
}

// NewValidationError creates a VALIDATION_ERROR AppError
func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

// NewConflictError creates a CONFLICT AppError
func NewConflictError(message, details string) *AppError {
	return NewAppError(ErrCodeConflict, message, details)
}

// NewStoreError wraps a persistence failure
func NewStoreError(message string, err error) *AppError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return NewAppError(ErrCodeStoreFailure, message, details)
}

// ErrorDetail is the error body of ErrorResponse
type ErrorDetail struct {
	Code    string `json:"code" example:"NOT_FOUND"`
	Message string `json:"message" example:"Board not found"`
	Details string `json:"details,omitempty" example:""`
}

// ErrorResponse is the envelope for failed requests
type ErrorResponse struct {
	Error     ErrorDetail `json:"error"`
	RequestID string      `json:"requestId" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
}

// SuccessResponse is the envelope for successful requests
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"requestId" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
}

// SendSuccess writes a success envelope
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		RequestID: requestID(c),
	})
}

// SendError writes an error envelope
func SendError(c *gin.Context, status int, code, message string) {
	SendErrorWithDetails(c, status, code, message, "")
}

// SendErrorWithDetails writes an error envelope carrying a details string
func SendErrorWithDetails(c *gin.Context, status int, code, message, details string) {
	c.JSON(status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
		RequestID: requestID(c),
	})
}

// requestID returns the request id set upstream or generates a new one
func requestID(c *gin.Context) string {
	if id, ok := c.Get("requestId"); ok {
		if s, ok := id.(string); ok && s != "" {
			return s
		}
	}
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return id
	}
	return uuid.New().String()
}
