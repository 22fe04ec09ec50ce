package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type ListHandler struct {
	listService service.ListService
}

func NewListHandler(listService service.ListService) *ListHandler {
	return &ListHandler{
		listService: listService,
	}
}

// CreateList godoc
// @Summary      리스트 생성
// @Description  보드의 마지막 위치에 리스트를 추가합니다 (편집 권한 필요)
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreateListRequest true "리스트 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.ListResponse} "리스트 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "편집 권한 없음"
// @Failure      404 {object} response.ErrorResponse "보드를 찾을 수 없음"
// @Router       /boards/{boardId}/lists [post]
func (h *ListHandler) CreateList(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId", "board ID")
	if !ok {
		return
	}

	var req dto.CreateListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.listService.CreateList(c.Request.Context(), callerFromContext(c), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, list)
}

// GetLists godoc
// @Summary      리스트 목록 조회
// @Tags         lists
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.ListResponse} "리스트 목록 조회 성공"
// @Failure      403 {object} response.ErrorResponse "접근 권한 없음"
// @Failure      404 {object} response.ErrorResponse "보드를 찾을 수 없음"
// @Router       /boards/{boardId}/lists [get]
func (h *ListHandler) GetLists(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId", "board ID")
	if !ok {
		return
	}

	lists, err := h.listService.GetLists(c.Request.Context(), callerFromContext(c), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, lists)
}

// UpdateList godoc
// @Summary      리스트 이름 변경
// @Tags         lists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        listId path string true "List ID (UUID)"
// @Param        request body dto.UpdateListRequest true "리스트 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.ListResponse} "리스트 수정 성공"
// @Failure      403 {object} response.ErrorResponse "편집 권한 없음"
// @Failure      404 {object} response.ErrorResponse "리스트를 찾을 수 없음"
// @Router       /lists/{listId} [patch]
func (h *ListHandler) UpdateList(c *gin.Context) {
	listID, ok := parseIDParam(c, "listId", "list ID")
	if !ok {
		return
	}

	var req dto.UpdateListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.listService.UpdateList(c.Request.Context(), callerFromContext(c), listID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, list)
}

// DeleteList godoc
// @Summary      리스트 삭제
// @Description  리스트와 카드를 삭제합니다. 다른 리스트의 위치는 바뀌지 않습니다.
// @Tags         lists
// @Security     BearerAuth
// @Param        listId path string true "List ID (UUID)"
// @Success      204 "삭제 성공"
// @Failure      403 {object} response.ErrorResponse "편집 권한 없음"
// @Failure      404 {object} response.ErrorResponse "리스트를 찾을 수 없음"
// @Router       /lists/{listId} [delete]
func (h *ListHandler) DeleteList(c *gin.Context) {
	listID, ok := parseIDParam(c, "listId", "list ID")
	if !ok {
		return
	}

	if err := h.listService.DeleteList(c.Request.Context(), callerFromContext(c), listID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
