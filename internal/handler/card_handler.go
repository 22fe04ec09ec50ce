package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type CardHandler struct {
	cardService service.CardService
}

func NewCardHandler(cardService service.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// CreateCard godoc
// @Summary      카드 생성
// @Description  리스트의 마지막 위치에 카드를 추가합니다 (편집 권한 필요)
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        listId path string true "List ID (UUID)"
// @Param        request body dto.CreateCardRequest true "카드 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.CardResponse} "카드 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      403 {object} response.ErrorResponse "편집 권한 없음"
// @Failure      404 {object} response.ErrorResponse "리스트를 찾을 수 없음"
// @Router       /lists/{listId}/cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	listID, ok := parseIDParam(c, "listId", "list ID")
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if !bindJSON(c, &req) {
		return
	}

	card, err := h.cardService.CreateCard(c.Request.Context(), callerFromContext(c), listID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, card)
}

// GetCards godoc
// @Summary      카드 목록 조회
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Param        listId path string true "List ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.CardResponse} "카드 목록 조회 성공"
// @Failure      403 {object} response.ErrorResponse "접근 권한 없음"
// @Failure      404 {object} response.ErrorResponse "리스트를 찾을 수 없음"
// @Router       /lists/{listId}/cards [get]
func (h *CardHandler) GetCards(c *gin.Context) {
	listID, ok := parseIDParam(c, "listId", "list ID")
	if !ok {
		return
	}

	cards, err := h.cardService.GetCards(c.Request.Context(), callerFromContext(c), listID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, cards)
}

// UpdateCard godoc
// @Summary      카드 수정
// @Description  제목과 설명을 수정합니다. 빈 설명은 설명을 제거합니다.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        cardId path string true "Card ID (UUID)"
// @Param        request body dto.UpdateCardRequest true "카드 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.CardResponse} "카드 수정 성공"
// @Failure      403 {object} response.ErrorResponse "편집 권한 없음"
// @Failure      404 {object} response.ErrorResponse "카드를 찾을 수 없음"
// @Router       /cards/{cardId} [patch]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	cardID, ok := parseIDParam(c, "cardId", "card ID")
	if !ok {
		return
	}

	var req dto.UpdateCardRequest
	if !bindJSON(c, &req) {
		return
	}

	card, err := h.cardService.UpdateCard(c.Request.Context(), callerFromContext(c), cardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, card)
}

// DeleteCard godoc
// @Summary      카드 삭제
// @Tags         cards
// @Security     BearerAuth
// @Param        cardId path string true "Card ID (UUID)"
// @Success      204 "삭제 성공"
// @Failure      403 {object} response.ErrorResponse "편집 권한 없음"
// @Failure      404 {object} response.ErrorResponse "카드를 찾을 수 없음"
// @Router       /cards/{cardId} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	cardID, ok := parseIDParam(c, "cardId", "card ID")
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(c.Request.Context(), callerFromContext(c), cardID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
