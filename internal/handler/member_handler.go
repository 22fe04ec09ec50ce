package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type MemberHandler struct {
	invitationService service.InvitationService
}

func NewMemberHandler(invitationService service.InvitationService) *MemberHandler {
	return &MemberHandler{
		invitationService: invitationService,
	}
}

// GetMembers godoc
// @Summary      보드 멤버 목록
// @Description  보드 소유자와 멤버만 조회할 수 있습니다
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.MemberResponse} "멤버 목록 조회 성공"
// @Failure      403 {object} response.ErrorResponse "멤버가 아님"
// @Failure      404 {object} response.ErrorResponse "보드를 찾을 수 없음"
// @Router       /boards/{boardId}/members [get]
func (h *MemberHandler) GetMembers(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId", "board ID")
	if !ok {
		return
	}

	members, err := h.invitationService.Members(c.Request.Context(), callerFromContext(c), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, members)
}

// RemoveMember godoc
// @Summary      보드 멤버 제거
// @Tags         members
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Param        userId path string true "User ID (UUID)"
// @Success      204 "제거 성공"
// @Failure      403 {object} response.ErrorResponse "소유자가 아님"
// @Failure      404 {object} response.ErrorResponse "보드를 찾을 수 없음"
// @Router       /boards/{boardId}/members/{userId} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId", "board ID")
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "userId", "user ID")
	if !ok {
		return
	}

	if err := h.invitationService.RemoveMember(c.Request.Context(), callerFromContext(c), boardID, userID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
