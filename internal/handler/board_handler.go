package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
}

func NewBoardHandler(boardService service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// CreateBoard godoc
// @Summary      보드 생성
// @Description  호출자를 소유자로 하는 새 보드를 생성합니다
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBoardRequest true "보드 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardResponse} "보드 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if !bindJSON(c, &req) {
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), callerFromContext(c), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// GetBoards godoc
// @Summary      접근 가능한 보드 목록
// @Description  소유하거나 참여 중인 보드와 공개 보드를 최신순으로 조회합니다
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse{data=[]dto.BoardResponse} "보드 목록 조회 성공"
// @Failure      401 {object} response.ErrorResponse "인증 필요"
// @Failure      500 {object} response.ErrorResponse "서버 에러"
// @Router       /boards [get]
func (h *BoardHandler) GetBoards(c *gin.Context) {
	boards, err := h.boardService.GetBoards(c.Request.Context(), callerFromContext(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// GetBoard godoc
// @Summary      보드 상세 조회
// @Description  리스트와 카드를 포함한 보드를 조회합니다
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardDetailResponse} "보드 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 Board ID"
// @Failure      403 {object} response.ErrorResponse "접근 권한 없음"
// @Failure      404 {object} response.ErrorResponse "보드를 찾을 수 없음"
// @Router       /boards/{boardId} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId", "board ID")
	if !ok {
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), callerFromContext(c), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// UpdateBoard godoc
// @Summary      보드 수정
// @Description  보드 이름과 설명을 수정합니다 (편집 권한 필요)
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.UpdateBoardRequest true "보드 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "보드 수정 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "편집 권한 없음"
// @Failure      404 {object} response.ErrorResponse "보드를 찾을 수 없음"
// @Router       /boards/{boardId} [patch]
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId", "board ID")
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if !bindJSON(c, &req) {
		return
	}

	board, err := h.boardService.UpdateBoard(c.Request.Context(), callerFromContext(c), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// UpdateVisibility godoc
// @Summary      보드 공개 범위 변경
// @Description  private/public 전환은 보드 소유자만 가능합니다
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.UpdateVisibilityRequest true "공개 범위"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse} "변경 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "소유자가 아님"
// @Failure      404 {object} response.ErrorResponse "보드를 찾을 수 없음"
// @Router       /boards/{boardId}/visibility [patch]
func (h *BoardHandler) UpdateVisibility(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId", "board ID")
	if !ok {
		return
	}

	var req dto.UpdateVisibilityRequest
	if !bindJSON(c, &req) {
		return
	}

	board, err := h.boardService.UpdateVisibility(c.Request.Context(), callerFromContext(c), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// DeleteBoard godoc
// @Summary      보드 삭제
// @Description  보드와 리스트, 카드, 멤버, 초대를 모두 삭제합니다 (소유자 전용)
// @Tags         boards
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Success      204 "삭제 성공"
// @Failure      403 {object} response.ErrorResponse "소유자가 아님"
// @Failure      404 {object} response.ErrorResponse "보드를 찾을 수 없음"
// @Router       /boards/{boardId} [delete]
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId", "board ID")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), callerFromContext(c), boardID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPermissions godoc
// @Summary      보드 권한 조회
// @Description  호출자의 읽기/편집/소유자 권한을 반환합니다
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardPermissionsResponse} "권한 조회 성공"
// @Failure      404 {object} response.ErrorResponse "보드를 찾을 수 없음"
// @Router       /boards/{boardId}/permissions [get]
func (h *BoardHandler) GetPermissions(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId", "board ID")
	if !ok {
		return
	}

	perms, err := h.boardService.GetPermissions(c.Request.Context(), callerFromContext(c), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, perms)
}
