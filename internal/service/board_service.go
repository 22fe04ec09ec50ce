package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateBoard(ctx context.Context, caller Caller, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoards(ctx context.Context, caller Caller) ([]*dto.BoardResponse, error)
	GetBoard(ctx context.Context, caller Caller, boardID uuid.UUID) (*dto.BoardDetailResponse, error)
	UpdateBoard(ctx context.Context, caller Caller, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	UpdateVisibility(ctx context.Context, caller Caller, boardID uuid.UUID, req *dto.UpdateVisibilityRequest) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, caller Caller, boardID uuid.UUID) error
	GetPermissions(ctx context.Context, caller Caller, boardID uuid.UUID) (*dto.BoardPermissionsResponse, error)
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo   repository.BoardRepository
	permissions PermissionService
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	permissions PermissionService,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo:   boardRepo,
		permissions: permissions,
		metrics:     m,
		logger:      logger,
	}
}

// CreateBoard creates a board owned by the caller
func (s *boardServiceImpl) CreateBoard(ctx context.Context, caller Caller, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if !caller.IsAuthenticated() {
		return nil, errUnauthenticated
	}

	visibility := domain.VisibilityPrivate
	if req.Visibility != "" {
		visibility = domain.Visibility(req.Visibility)
	}
	if !visibility.IsValid() {
		return nil, response.NewValidationError("Invalid visibility", "visibility must be private or public")
	}

	board := &domain.Board{
		Name:        req.Name,
		Description: req.Description,
		Visibility:  visibility,
		OwnerID:     caller.UserID,
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		s.logger.Error("Failed to create board", zap.String("owner_id", caller.UserID.String()), zap.Error(err))
		return nil, response.NewStoreError("Failed to create board", err)
	}

	s.metrics.IncrementBoardCreated()
	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.String("owner_id", caller.UserID.String()),
	)
	return toBoardResponse(board), nil
}

// GetBoards returns the boards the caller owns, has joined, or can see because they are public
func (s *boardServiceImpl) GetBoards(ctx context.Context, caller Caller) ([]*dto.BoardResponse, error) {
	if !caller.IsAuthenticated() {
		return nil, errUnauthenticated
	}

	boards, err := s.boardRepo.FindAccessible(ctx, caller.UserID)
	if err != nil {
		return nil, response.NewStoreError("Failed to list boards", err)
	}

	result := make([]*dto.BoardResponse, 0, len(boards))
	for _, b := range boards {
		result = append(result, toBoardResponse(b))
	}
	return result, nil
}

// GetBoard returns a board with its lists and cards
func (s *boardServiceImpl) GetBoard(ctx context.Context, caller Caller, boardID uuid.UUID) (*dto.BoardDetailResponse, error) {
	if err := authorize(s.permissions.ResolveReadPermission(ctx, caller, boardID)); err != nil {
		return nil, err
	}

	board, err := s.boardRepo.FindByIDWithContent(ctx, boardID)
	if err != nil {
		return nil, lookupError(err, "Board")
	}
	return toBoardDetailResponse(board), nil
}

// UpdateBoard renames or re-describes a board. Requires edit permission.
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, caller Caller, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	if err := authorize(s.permissions.ResolveEditPermission(ctx, caller, boardID)); err != nil {
		return nil, err
	}

	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, lookupError(err, "Board")
	}

	if req.Name != nil {
		board.Name = *req.Name
	}
	if req.Description != nil {
		board.Description = *req.Description
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, response.NewStoreError("Failed to update board", err)
	}
	return toBoardResponse(board), nil
}

// UpdateVisibility changes board visibility. Only the literal owner may do this.
func (s *boardServiceImpl) UpdateVisibility(ctx context.Context, caller Caller, boardID uuid.UUID, req *dto.UpdateVisibilityRequest) (*dto.BoardResponse, error) {
	if err := authorize(s.permissions.ResolveOwnerPermission(ctx, caller, boardID)); err != nil {
		return nil, err
	}

	visibility := domain.Visibility(req.Visibility)
	if !visibility.IsValid() {
		return nil, response.NewValidationError("Invalid visibility", "visibility must be private or public")
	}

	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, lookupError(err, "Board")
	}

	board.Visibility = visibility
	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, response.NewStoreError("Failed to update board visibility", err)
	}
	return toBoardResponse(board), nil
}

// DeleteBoard deletes a board with its lists, cards, members and invitations.
// Only the literal owner may do this.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, caller Caller, boardID uuid.UUID) error {
	if err := authorize(s.permissions.ResolveOwnerPermission(ctx, caller, boardID)); err != nil {
		return err
	}

	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		s.logger.Error("Failed to delete board", zap.String("board_id", boardID.String()), zap.Error(err))
		return response.NewStoreError("Failed to delete board", err)
	}

	s.logger.Info("Board deleted",
		zap.String("board_id", boardID.String()),
		zap.String("user_id", caller.UserID.String()),
	)
	return nil
}

// GetPermissions reports what the caller may do on the board
func (s *boardServiceImpl) GetPermissions(ctx context.Context, caller Caller, boardID uuid.UUID) (*dto.BoardPermissionsResponse, error) {
	read, err := s.permissions.ResolveReadPermission(ctx, caller, boardID)
	if err != nil {
		return nil, err
	}
	if !read.Granted && read.Code != response.ErrCodeForbidden {
		return nil, read.Err()
	}

	edit, err := s.permissions.ResolveEditPermission(ctx, caller, boardID)
	if err != nil {
		return nil, err
	}
	owner, err := s.permissions.ResolveOwnerPermission(ctx, caller, boardID)
	if err != nil {
		return nil, err
	}

	return &dto.BoardPermissionsResponse{
		BoardID: boardID,
		CanRead: read.Granted,
		CanEdit: edit.Granted,
		IsOwner: owner.Granted,
	}, nil
}
