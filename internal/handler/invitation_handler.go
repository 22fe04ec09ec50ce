package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type InvitationHandler struct {
	invitationService service.InvitationService
}

func NewInvitationHandler(invitationService service.InvitationService) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
	}
}

// CreateInvitation godoc
// @Summary      초대 코드 생성
// @Description  보드 소유자가 역할과 선택적 만료 시간(시간 단위)을 지정해 초대 코드를 만듭니다
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreateInvitationRequest true "초대 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.InvitationResponse} "초대 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "소유자가 아님"
// @Failure      404 {object} response.ErrorResponse "보드를 찾을 수 없음"
// @Router       /boards/{boardId}/invitations [post]
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId", "board ID")
	if !ok {
		return
	}

	var req dto.CreateInvitationRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	invitation, err := h.invitationService.Create(c.Request.Context(), callerFromContext(c), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, invitation)
}

// GetInvitations godoc
// @Summary      초대 목록 조회
// @Description  취소된 초대를 포함해 보드의 모든 초대를 최신순으로 조회합니다 (소유자 전용)
// @Tags         invitations
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.InvitationResponse} "초대 목록 조회 성공"
// @Failure      403 {object} response.ErrorResponse "소유자가 아님"
// @Failure      404 {object} response.ErrorResponse "보드를 찾을 수 없음"
// @Router       /boards/{boardId}/invitations [get]
func (h *InvitationHandler) GetInvitations(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId", "board ID")
	if !ok {
		return
	}

	invitations, err := h.invitationService.List(c.Request.Context(), callerFromContext(c), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, invitations)
}

// RevokeInvitation godoc
// @Summary      초대 취소
// @Description  초대를 비활성화합니다. 이미 취소된 초대도 성공으로 처리합니다.
// @Tags         invitations
// @Security     BearerAuth
// @Param        invitationId path string true "Invitation ID (UUID)"
// @Success      204 "취소 성공"
// @Failure      403 {object} response.ErrorResponse "소유자가 아님"
// @Failure      404 {object} response.ErrorResponse "초대를 찾을 수 없음"
// @Router       /invitations/{invitationId} [delete]
func (h *InvitationHandler) RevokeInvitation(c *gin.Context) {
	invitationID, ok := parseIDParam(c, "invitationId", "invitation ID")
	if !ok {
		return
	}

	if err := h.invitationService.Revoke(c.Request.Context(), callerFromContext(c), invitationID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PreviewInvitation godoc
// @Summary      초대 미리보기
// @Description  가입하지 않고 초대 대상 보드와 상태(valid, revoked, expired)를 확인합니다
// @Tags         invitations
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "초대 코드"
// @Success      200 {object} response.SuccessResponse{data=dto.InvitationPreviewResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "초대를 찾을 수 없음"
// @Router       /invitations/{code} [get]
func (h *InvitationHandler) PreviewInvitation(c *gin.Context) {
	preview, err := h.invitationService.Preview(c.Request.Context(), callerFromContext(c), c.Param("code"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, preview)
}

// AcceptInvitation godoc
// @Summary      초대 수락
// @Description  초대 코드로 보드에 가입합니다. 이미 멤버인 경우 역할이 초대의 역할로 바뀝니다.
// @Description  실패 시 details는 INVITATION_INVALID, INVITATION_REVOKED, INVITATION_EXPIRED 중 하나입니다.
// @Tags         invitations
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "초대 코드"
// @Success      200 {object} response.SuccessResponse{data=dto.RedeemInvitationResponse} "가입 성공"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      409 {object} response.ErrorResponse "유효하지 않거나 취소/만료된 초대"
// @Failure      429 {object} response.ErrorResponse "요청 한도 초과"
// @Router       /invitations/{code}/accept [post]
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	result, err := h.invitationService.Redeem(c.Request.Context(), callerFromContext(c), c.Param("code"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
