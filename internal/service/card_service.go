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

// CardService defines the interface for card business logic.
// Permissions are checked on the board that owns the card's list.
type CardService interface {
	CreateCard(ctx context.Context, caller Caller, listID uuid.UUID, req *dto.CreateCardRequest) (*dto.CardResponse, error)
	GetCards(ctx context.Context, caller Caller, listID uuid.UUID) ([]*dto.CardResponse, error)
	UpdateCard(ctx context.Context, caller Caller, cardID uuid.UUID, req *dto.UpdateCardRequest) (*dto.CardResponse, error)
	DeleteCard(ctx context.Context, caller Caller, cardID uuid.UUID) error
}

type cardServiceImpl struct {
	cardRepo    repository.CardRepository
	listRepo    repository.ListRepository
	permissions PermissionService
	logger      *zap.Logger
}

// NewCardService creates a new instance of CardService
func NewCardService(
	cardRepo repository.CardRepository,
	listRepo repository.ListRepository,
	permissions PermissionService,
	logger *zap.Logger,
) CardService {
	return &cardServiceImpl{
		cardRepo:    cardRepo,
		listRepo:    listRepo,
		permissions: permissions,
		logger:      logger,
	}
}

// CreateCard appends a card to the list
func (s *cardServiceImpl) CreateCard(ctx context.Context, caller Caller, listID uuid.UUID, req *dto.CreateCardRequest) (*dto.CardResponse, error) {
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

	max, exists, err := s.cardRepo.MaxPosition(ctx, listID)
	if err != nil {
		return nil, response.NewStoreError("Failed to read card positions", err)
	}

	card := &domain.Card{
		ListID:      listID,
		Title:       req.Title,
		Description: req.Description,
		Position:    nextPosition(max, exists),
	}
	if err := s.cardRepo.Create(ctx, card); err != nil {
		s.logger.Error("Failed to create card", zap.String("list_id", listID.String()), zap.Error(err))
		return nil, response.NewStoreError("Failed to create card", err)
	}
	return toCardResponse(card), nil
}

// GetCards returns the list's cards ordered by position
func (s *cardServiceImpl) GetCards(ctx context.Context, caller Caller, listID uuid.UUID) ([]*dto.CardResponse, error) {
	list, err := s.listRepo.FindByID(ctx, listID)
	if err != nil {
		return nil, lookupError(err, "List")
	}
	if err := authorize(s.permissions.ResolveReadPermission(ctx, caller, list.BoardID)); err != nil {
		return nil, err
	}

	cards, err := s.cardRepo.FindByListID(ctx, listID)
	if err != nil {
		return nil, response.NewStoreError("Failed to list cards", err)
	}

	result := make([]*dto.CardResponse, 0, len(cards))
	for _, c := range cards {
		result = append(result, toCardResponse(c))
	}
	return result, nil
}

// UpdateCard updates title and/or description
func (s *cardServiceImpl) UpdateCard(ctx context.Context, caller Caller, cardID uuid.UUID, req *dto.UpdateCardRequest) (*dto.CardResponse, error) {
	card, err := s.authorizeCard(ctx, caller, cardID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		card.Title = *req.Title
	}
	if req.Description != nil {
		if *req.Description == "" {
			card.Description = nil
		} else {
			card.Description = req.Description
		}
	}

	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, response.NewStoreError("Failed to update card", err)
	}
	return toCardResponse(card), nil
}

// DeleteCard deletes a card without renumbering siblings
func (s *cardServiceImpl) DeleteCard(ctx context.Context, caller Caller, cardID uuid.UUID) error {
	card, err := s.authorizeCard(ctx, caller, cardID)
	if err != nil {
		return err
	}

	if err := s.cardRepo.Delete(ctx, card.ID); err != nil {
		return response.NewStoreError("Failed to delete card", err)
	}
	return nil
}

// authorizeCard resolves card -> list -> board and checks edit permission
func (s *cardServiceImpl) authorizeCard(ctx context.Context, caller Caller, cardID uuid.UUID) (*domain.Card, error) {
	if !caller.IsAuthenticated() {
		return nil, errUnauthenticated
	}

	card, err := s.cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, lookupError(err, "Card")
	}
	list, err := s.listRepo.FindByID(ctx, card.ListID)
	if err != nil {
		return nil, lookupError(err, "List")
	}
	if err := authorize(s.permissions.ResolveEditPermission(ctx, caller, list.BoardID)); err != nil {
		return nil, err
	}
	return card, nil
}
