package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportBoard godoc
// @Summary      보드 내보내기
// @Description  보드 스냅샷(JSON)을 S3에 업로드하고 presigned 다운로드 URL을 반환합니다
// @Tags         exports
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardExportResponse} "내보내기 성공"
// @Failure      403 {object} response.ErrorResponse "접근 권한 없음"
// @Failure      404 {object} response.ErrorResponse "보드를 찾을 수 없음"
// @Failure      503 {object} response.ErrorResponse "스토리지 사용 불가"
// @Router       /boards/{boardId}/export [post]
func (h *ExportHandler) ExportBoard(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId", "board ID")
	if !ok {
		return
	}

	export, err := h.exportService.ExportBoard(c.Request.Context(), callerFromContext(c), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, export)
}

// GetExports godoc
// @Summary      내보내기 이력
// @Tags         exports
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.BoardExportResponse} "조회 성공"
// @Failure      403 {object} response.ErrorResponse "멤버가 아님"
// @Failure      503 {object} response.ErrorResponse "스토리지 사용 불가"
// @Router       /boards/{boardId}/exports [get]
func (h *ExportHandler) GetExports(c *gin.Context) {
	boardID, ok := parseIDParam(c, "boardId", "board ID")
	if !ok {
		return
	}

	exports, err := h.exportService.GetExports(c.Request.Context(), callerFromContext(c), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, exports)
}
