package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// ObjectStorage is the subset of the S3 client used by board exports
type ObjectStorage interface {
	UploadFile(ctx context.Context, key string, body io.Reader, contentType string) error
	PresignDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

// ExportService writes board snapshots to object storage
type ExportService interface {
	ExportBoard(ctx context.Context, caller Caller, boardID uuid.UUID) (*dto.BoardExportResponse, error)
	GetExports(ctx context.Context, caller Caller, boardID uuid.UUID) ([]*dto.BoardExportResponse, error)
}

type exportServiceImpl struct {
	boardRepo     repository.BoardRepository
	exportRepo    repository.ExportRepository
	permissions   PermissionService
	storage       ObjectStorage
	presignExpiry time.Duration
	now           func() time.Time
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

// NewExportService creates a new instance of ExportService.
// storage may be nil, in which case exports report SERVICE_UNAVAILABLE.
func NewExportService(
	boardRepo repository.BoardRepository,
	exportRepo repository.ExportRepository,
	permissions PermissionService,
	storage ObjectStorage,
	presignExpiry time.Duration,
	now func() time.Time,
	m *metrics.Metrics,
	logger *zap.Logger,
) ExportService {
	if now == nil {
		now = time.Now
	}
	if presignExpiry <= 0 {
		presignExpiry = 15 * time.Minute
	}
	return &exportServiceImpl{
		boardRepo:     boardRepo,
		exportRepo:    exportRepo,
		permissions:   permissions,
		storage:       storage,
		presignExpiry: presignExpiry,
		now:           now,
		metrics:       m,
		logger:        logger,
	}
}

type listSummary struct {
	ListID uuid.UUID `json:"listId"`
	Title  string    `json:"title"`
	Cards  int       `json:"cards"`
}

// ExportBoard uploads a JSON snapshot of the board and returns a presigned download URL
func (s *exportServiceImpl) ExportBoard(ctx context.Context, caller Caller, boardID uuid.UUID) (*dto.BoardExportResponse, error) {
	if !caller.IsAuthenticated() {
		return nil, errUnauthenticated
	}
	if err := authorize(s.permissions.ResolveReadPermission(ctx, caller, boardID)); err != nil {
		return nil, err
	}
	if s.storage == nil {
		return nil, response.NewAppError(response.ErrCodeServiceUnavailable, "Object storage is not configured", "")
	}

	board, err := s.boardRepo.FindByIDWithContent(ctx, boardID)
	if err != nil {
		return nil, lookupError(err, "Board")
	}

	now := s.now().UTC()
	detail := toBoardDetailResponse(board)
	snapshot := dto.BoardSnapshot{
		ExportedAt: now,
		Board:      detail.BoardResponse,
		Lists:      detail.Lists,
	}
	body, err := json.Marshal(snapshot)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode board snapshot", err.Error())
	}

	summaries := make([]listSummary, 0, len(board.Lists))
	cardCount := 0
	for _, l := range board.Lists {
		summaries = append(summaries, listSummary{ListID: l.ID, Title: l.Title, Cards: len(l.Cards)})
		cardCount += len(l.Cards)
	}
	summary, err := json.Marshal(summaries)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to encode export summary", err.Error())
	}

	exportID := uuid.New()
	key := exportKey(boardID, exportID, now)
	if err := s.storage.UploadFile(ctx, key, bytes.NewReader(body), "application/json"); err != nil {
		s.logger.Error("Failed to upload board snapshot", zap.String("board_id", boardID.String()), zap.Error(err))
		return nil, response.NewAppError(response.ErrCodeServiceUnavailable, "Failed to upload board snapshot", err.Error())
	}

	export := &domain.BoardExport{
		BoardID:     boardID,
		RequestedBy: caller.UserID,
		FileKey:     key,
		ListCount:   len(board.Lists),
		CardCount:   cardCount,
		Summary:     datatypes.JSON(summary),
	}
	export.ID = exportID
	if err := s.exportRepo.Create(ctx, export); err != nil {
		if delErr := s.storage.DeleteFile(ctx, key); delErr != nil {
			s.logger.Warn("Failed to remove orphaned snapshot", zap.String("key", key), zap.Error(delErr))
		}
		return nil, response.NewStoreError("Failed to record board export", err)
	}

	resp := s.toResponse(ctx, export)

	s.metrics.IncrementBoardExports()
	s.logger.Info("Board exported",
		zap.String("board_id", boardID.String()),
		zap.String("export_id", export.ID.String()),
		zap.Int("lists", export.ListCount),
		zap.Int("cards", export.CardCount),
	)
	return resp, nil
}

// GetExports lists previous exports of the board, newest first, with fresh download URLs
func (s *exportServiceImpl) GetExports(ctx context.Context, caller Caller, boardID uuid.UUID) ([]*dto.BoardExportResponse, error) {
	if err := authorize(s.permissions.ResolveMemberAccess(ctx, caller, boardID)); err != nil {
		return nil, err
	}
	if s.storage == nil {
		return nil, response.NewAppError(response.ErrCodeServiceUnavailable, "Object storage is not configured", "")
	}

	exports, err := s.exportRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewStoreError("Failed to list board exports", err)
	}

	result := make([]*dto.BoardExportResponse, 0, len(exports))
	for _, e := range exports {
		result = append(result, s.toResponse(ctx, e))
	}
	return result, nil
}

// toResponse attaches a presigned download URL. When presigning fails the
// export is still returned, without URL and expiry.
func (s *exportServiceImpl) toResponse(ctx context.Context, e *domain.BoardExport) *dto.BoardExportResponse {
	resp := &dto.BoardExportResponse{
		ExportID:  e.ID,
		BoardID:   e.BoardID,
		FileKey:   e.FileKey,
		ListCount: e.ListCount,
		CardCount: e.CardCount,
		CreatedAt: e.CreatedAt,
	}

	url, err := s.storage.PresignDownloadURL(ctx, e.FileKey, s.presignExpiry)
	if err != nil {
		s.logger.Warn("Failed to presign export download URL",
			zap.String("export_id", e.ID.String()),
			zap.String("key", e.FileKey),
			zap.Error(err),
		)
		return resp
	}

	expiresAt := s.now().UTC().Add(s.presignExpiry)
	resp.DownloadURL = url
	resp.ExpiresAt = &expiresAt
	return resp
}

// exportKey: kanban/exports/{boardId}/{yyyy}/{mm}/{exportId}.json
func exportKey(boardID, exportID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("kanban/exports/%s/%04d/%02d/%s.json", boardID, at.Year(), int(at.Month()), exportID)
}
