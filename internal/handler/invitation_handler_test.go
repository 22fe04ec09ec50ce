package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

// MockInvitationService is a mock implementation of InvitationService
type MockInvitationService struct {
	CreateFunc       func(ctx context.Context, caller service.Caller, boardID uuid.UUID, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error)
	ListFunc         func(ctx context.Context, caller service.Caller, boardID uuid.UUID) ([]*dto.InvitationResponse, error)
	RevokeFunc       func(ctx context.Context, caller service.Caller, invitationID uuid.UUID) error
	RedeemFunc       func(ctx context.Context, caller service.Caller, code string) (*dto.RedeemInvitationResponse, error)
	PreviewFunc      func(ctx context.Context, caller service.Caller, code string) (*dto.InvitationPreviewResponse, error)
	MembersFunc      func(ctx context.Context, caller service.Caller, boardID uuid.UUID) ([]*dto.MemberResponse, error)
	RemoveMemberFunc func(ctx context.Context, caller service.Caller, boardID, userID uuid.UUID) error
}

func (m *MockInvitationService) Create(ctx context.Context, caller service.Caller, boardID uuid.UUID, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, caller, boardID, req)
	}
	return nil, nil
}

func (m *MockInvitationService) List(ctx context.Context, caller service.Caller, boardID uuid.UUID) ([]*dto.InvitationResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, caller, boardID)
	}
	return nil, nil
}

func (m *MockInvitationService) Revoke(ctx context.Context, caller service.Caller, invitationID uuid.UUID) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, caller, invitationID)
	}
	return nil
}

func (m *MockInvitationService) Redeem(ctx context.Context, caller service.Caller, code string) (*dto.RedeemInvitationResponse, error) {
	if m.RedeemFunc != nil {
		return m.RedeemFunc(ctx, caller, code)
	}
	return nil, nil
}

func (m *MockInvitationService) Preview(ctx context.Context, caller service.Caller, code string) (*dto.InvitationPreviewResponse, error) {
	if m.PreviewFunc != nil {
		return m.PreviewFunc(ctx, caller, code)
	}
	return nil, nil
}

func (m *MockInvitationService) Members(ctx context.Context, caller service.Caller, boardID uuid.UUID) ([]*dto.MemberResponse, error) {
	if m.MembersFunc != nil {
		return m.MembersFunc(ctx, caller, boardID)
	}
	return nil, nil
}

func (m *MockInvitationService) RemoveMember(ctx context.Context, caller service.Caller, boardID, userID uuid.UUID) error {
	if m.RemoveMemberFunc != nil {
		return m.RemoveMemberFunc(ctx, caller, boardID, userID)
	}
	return nil
}

func TestInvitationHandler_CreateInvitation(t *testing.T) {
	boardID := uuid.New()

	tests := []struct {
		name           string
		body           []byte
		wantRole       string
		wantExpiresIn  *int
		mockErr        error
		expectedStatus int
	}{
		{
			name:           "성공: 본문 없이 기본값 사용",
			body:           nil,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "성공: 역할과 만료 시간 지정",
			body:           []byte(`{"role":"editor","expiresIn":24}`),
			wantRole:       "editor",
			wantExpiresIn:  intPtr(24),
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "실패: 만료 시간 0",
			body:           []byte(`{"expiresIn":0}`),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "실패: 알 수 없는 역할",
			body:           []byte(`{"role":"admin"}`),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "실패: 소유자가 아님",
			body:           []byte(`{"role":"viewer"}`),
			wantRole:       "viewer",
			mockErr:        response.NewForbiddenError("Owner permission required", ""),
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotReq *dto.CreateInvitationRequest
			mockService := &MockInvitationService{
				CreateFunc: func(ctx context.Context, caller service.Caller, id uuid.UUID, req *dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
					gotReq = req
					if tt.mockErr != nil {
						return nil, tt.mockErr
					}
					return &dto.InvitationResponse{ID: uuid.New(), BoardID: id, Code: "Xk3pQ9rT2mVa", Role: "viewer", IsActive: true}, nil
				},
			}
			router := setupTestRouter(uuid.New())
			router.POST("/api/boards/:boardId/invitations", NewInvitationHandler(mockService).CreateInvitation)

			req := httptest.NewRequest(http.MethodPost, "/api/boards/"+boardID.String()+"/invitations", bytes.NewReader(tt.body))
			if tt.body != nil {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus == http.StatusBadRequest {
				assert.Nil(t, gotReq)
				return
			}
			require.NotNil(t, gotReq)
			assert.Equal(t, tt.wantRole, gotReq.Role)
			assert.Equal(t, tt.wantExpiresIn, gotReq.ExpiresIn)
		})
	}
}

func TestInvitationHandler_AcceptInvitation(t *testing.T) {
	userID := uuid.New()
	boardID := uuid.New()

	tests := []struct {
		name           string
		mockErr        error
		expectedStatus int
		wantDetails    string
	}{
		{"성공: 가입", nil, http.StatusOK, ""},
		{"실패: 만료된 초대", response.NewConflictError("This invitation has expired", service.DetailInvitationExpired), http.StatusConflict, "INVITATION_EXPIRED"},
		{"실패: 취소된 초대", response.NewConflictError("This invitation has been revoked", service.DetailInvitationRevoked), http.StatusConflict, "INVITATION_REVOKED"},
		{"실패: 알 수 없는 코드", response.NewConflictError("Invalid invitation code", service.DetailInvitationInvalid), http.StatusConflict, "INVITATION_INVALID"},
		{"실패: 저장소 오류", response.NewStoreError("Failed to add member", assert.AnError), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCode string
			var gotCaller service.Caller
			mockService := &MockInvitationService{
				RedeemFunc: func(ctx context.Context, caller service.Caller, code string) (*dto.RedeemInvitationResponse, error) {
					gotCode, gotCaller = code, caller
					if tt.mockErr != nil {
						return nil, tt.mockErr
					}
					return &dto.RedeemInvitationResponse{BoardID: boardID, Role: "editor"}, nil
				},
			}
			router := setupTestRouter(userID)
			router.POST("/api/invitations/:code/accept", NewInvitationHandler(mockService).AcceptInvitation)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/invitations/Xk3pQ9rT2mVa/accept", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "Xk3pQ9rT2mVa", gotCode)
			assert.Equal(t, userID, gotCaller.UserID)
			assert.Equal(t, "user@example.com", gotCaller.Email)

			if tt.mockErr == nil {
				var resp struct {
					Data dto.RedeemInvitationResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, boardID, resp.Data.BoardID)
				assert.Equal(t, "editor", resp.Data.Role)
				return
			}

			var resp response.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantDetails, resp.Error.Details)
		})
	}
}

func TestInvitationHandler_RevokeInvitation(t *testing.T) {
	tests := []struct {
		name           string
		invitationID   string
		mockErr        error
		expectedStatus int
	}{
		{"성공: 취소", uuid.New().String(), nil, http.StatusNoContent},
		{"실패: 잘못된 UUID", "nope", nil, http.StatusBadRequest},
		{"실패: 초대 없음", uuid.New().String(), response.NewNotFoundError("Invitation not found", ""), http.StatusNotFound},
		{"실패: 소유자가 아님", uuid.New().String(), response.NewForbiddenError("Owner permission required", ""), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockInvitationService{
				RevokeFunc: func(ctx context.Context, caller service.Caller, invitationID uuid.UUID) error {
					return tt.mockErr
				},
			}
			router := setupTestRouter(uuid.New())
			router.DELETE("/api/invitations/:invitationId", NewInvitationHandler(mockService).RevokeInvitation)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/invitations/"+tt.invitationID, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestMemberHandler_RemoveMember(t *testing.T) {
	boardID, userID := uuid.New(), uuid.New()
	var gotBoard, gotUser uuid.UUID

	mockService := &MockInvitationService{
		RemoveMemberFunc: func(ctx context.Context, caller service.Caller, b, u uuid.UUID) error {
			gotBoard, gotUser = b, u
			return nil
		},
	}
	router := setupTestRouter(uuid.New())
	router.DELETE("/api/boards/:boardId/members/:userId", NewMemberHandler(mockService).RemoveMember)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/boards/"+boardID.String()+"/members/"+userID.String(), nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, boardID, gotBoard)
	assert.Equal(t, userID, gotUser)
}

func intPtr(v int) *int { return &v }
