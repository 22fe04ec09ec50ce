package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kanban-board-api/internal/response"
)

func TestMapErrorCodeToHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{response.ErrCodeNotFound, http.StatusNotFound},
		{response.ErrCodeConflict, http.StatusConflict},
		{response.ErrCodeAlreadyExists, http.StatusConflict},
		{response.ErrCodeValidation, http.StatusBadRequest},
		{response.ErrCodeUnauthorized, http.StatusUnauthorized},
		{response.ErrCodeForbidden, http.StatusForbidden},
		{response.ErrCodeRateLimited, http.StatusTooManyRequests},
		{response.ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{response.ErrCodeStoreFailure, http.StatusInternalServerError},
		{response.ErrCodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, mapErrorCodeToHTTPStatus(tt.code))
		})
	}
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{
			name:        "충돌 에러는 상세 정보를 유지",
			err:         response.NewConflictError("This invitation has expired", "INVITATION_EXPIRED"),
			wantStatus:  http.StatusConflict,
			wantCode:    response.ErrCodeConflict,
			wantDetails: "INVITATION_EXPIRED",
		},
		{
			name:        "감싼 AppError도 인식",
			err:         fmt.Errorf("redeem: %w", response.NewForbiddenError("Owner permission required", "")),
			wantStatus:  http.StatusForbidden,
			wantCode:    response.ErrCodeForbidden,
			wantDetails: "",
		},
		{
			name:        "저장소 에러는 상세 정보를 숨김",
			err:         response.NewStoreError("Failed to create board", errors.New("pq: connection refused")),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    response.ErrCodeStoreFailure,
			wantDetails: "",
		},
		{
			name:        "서비스 불가는 상세 정보를 유지",
			err:         response.NewAppError(response.ErrCodeServiceUnavailable, "Export storage is not configured", "s3 disabled"),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    response.ErrCodeServiceUnavailable,
			wantDetails: "s3 disabled",
		},
		{
			name:       "gorm 레코드 없음",
			err:        gorm.ErrRecordNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   response.ErrCodeNotFound,
		},
		{
			name:       "알 수 없는 에러",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   response.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/", func(c *gin.Context) { handleServiceError(c, tt.err) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp response.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
		})
	}
}
