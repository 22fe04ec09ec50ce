package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kanban-board-api/internal/domain"
	"kanban-board-api/internal/dto"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
)

// ListService defines the interface for list business logic
type ListService interface {
	CreateList(ctx context.Context, caller Caller, boardID uuid.UUID, req *dto.CreateListRequest) (*dto.ListResponse, error)
	GetLists(ctx context.Context, caller Caller, boardID uuid.UUID) ([]*dto.ListResponse, error)
	UpdateList(ctx context.Context, caller Caller, listID uuid.UUID, req *dto.UpdateListRequest) (*dto.ListResponse, error)
	DeleteList(ctx context.Context, caller Caller, listID uuid.UUID) error
}

type listServiceImpl struct {
	listRepo    repository.ListRepository
	permissions PermissionService
	logger      *zap.Logger
}

// NewListService creates a new instance of ListService
func NewListService(listRepo repository.ListRepository, permissions PermissionService, logger *zap.Logger) ListService {
	return &listServiceImpl{
		listRepo:    listRepo,
		permissions: permissions,
		logger:      logger,
	}
}

// CreateList appends a list to the board
func (s *listServiceImpl) CreateList(ctx context.Context, caller Caller, boardID uuid.UUID, req *dto.CreateListRequest) (*dto.ListResponse, error) {
	if err := authorize(s.permissions.ResolveEditPermission(ctx, caller, boardID)); err != nil {
		return nil, err
	}

	max, exists, err := s.listRepo.MaxPosition(ctx, boardID)
	if err != nil {
		return nil, response.NewStoreError("Failed to read list positions", err)
	}

	list := &domain.List{
		BoardID:  boardID,
		Title:    req.Title,
		Position: nextPosition(max, exists),
	}
	if err := s.listRepo.Create(ctx, list); err != nil {
		s.logger.Error("Failed to create list", zap.String("board_id", boardID.String()), zap.Error(err))
		return nil, response.NewStoreError("Failed to create list", err)
	}
	return toListResponse(list, false), nil
}

// GetLists returns the board's lists ordered by position
func (s *listServiceImpl) GetLists(ctx context.Context, caller Caller, boardID uuid.UUID) ([]*dto.ListResponse, error) {
	if err := authorize(s.permissions.ResolveReadPermission(ctx, caller, boardID)); err != nil {
		return nil, err
	}

	lists, err := s.listRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewStoreError("Failed to list lists", err)
	}

	result := make([]*dto.ListResponse, 0, len(lists))
	for _, l := range lists {
		result = append(result, toListResponse(l, false))
	}
	return result, nil
}

// UpdateList renames a list
func (s *listServiceImpl) UpdateList(ctx context.Context, caller Caller, listID uuid.UUID, req *dto.UpdateListRequest) (*dto.ListResponse, error) {
	list, err := s.authorizeList(ctx, caller, listID)
	if err != nil {
		return nil, err
	}

	list.Title = req.Title
	if err := s.listRepo.Update(ctx, list); err != nil {
		return nil, response.NewStoreError("Failed to update list", err)
	}
	return toListResponse(list, false), nil
}

// DeleteList deletes a list and its cards without renumbering siblings
func (s *listServiceImpl) DeleteList(ctx context.Context, caller Caller, listID uuid.UUID) error {
	list, err := s.authorizeList(ctx, caller, listID)
	if err != nil {
		return err
	}

	if err := s.listRepo.Delete(ctx, list.ID); err != nil {
		return response.NewStoreError("Failed to delete list", err)
	}
	return nil
}

// authorizeList loads the list and checks edit permission on its board
func (s *listServiceImpl) authorizeList(ctx context.Context, caller Caller, listID uuid.UUID) (*domain.List, error) {
	if !caller.IsAuthenticated() {
		return nil, errUnauthenticated
	}

	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, lookupError(err, "List")
	}

	if err := authorize(s.permissions.ResolveEditPermission(ctx, caller, list.BoardID)); err != nil {
		return nil, err
	}
	return list, nil
}
