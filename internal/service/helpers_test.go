package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"gorm.io/gorm"

	"kanban-board-api/internal/response"
)

func counterValue(c prometheus.Collector) float64 {
	return testutil.ToFloat64(c)
}

// appErrorCode extracts the code of an AppError, or "" for any other error
func appErrorCode(err error) string {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

func appErrorDetails(err error) string {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr.Details
	}
	return ""
}

func errRecordNotFound() error {
	return gorm.ErrRecordNotFound
}
