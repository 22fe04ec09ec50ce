package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByIDWithContent(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindAccessible(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// Create creates a new board
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

// FindByID finds a board by its ID without loading lists
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindByIDWithContent loads a board with its lists and cards, both ordered by position
func (r *boardRepositoryImpl) FindByIDWithContent(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	err := r.db.WithContext(ctx).
		Preload("Lists", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, created_at ASC")
		}).
		Preload("Lists.Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, created_at ASC")
		}).
		Where("id = ?", id).
		First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// FindAccessible returns boards the user owns, boards the user is a member of,
// and public boards, newest first
func (r *boardRepositoryImpl) FindAccessible(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error) {
	var boards []*domain.Board
	memberBoards := r.db.Model(&domain.BoardMember{}).Select("board_id").Where("user_id = ?", userID)

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", userID).
		Or("visibility = ?", domain.VisibilityPublic).
		Or("id IN (?)", memberBoards).
		Order("created_at DESC").
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// Update saves name, description and visibility. OwnerID is never written.
func (r *boardRepositoryImpl) Update(ctx context.Context, board *domain.Board) error {
	return r.db.WithContext(ctx).
		Model(board).
		Select("name", "description", "visibility", "updated_at").
		Updates(board).Error
}

// Delete removes a board and everything scoped to it in one transaction
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listIDs := tx.Model(&domain.List{}).Select("id").Where("board_id = ?", id)
		if err := tx.Where("list_id IN (?)", listIDs).Delete(&domain.Card{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.List{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.BoardMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.BoardInvitation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.BoardExport{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Board{}).Error
	})
}

// Count returns the total number of boards
func (r *boardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Board{}).Count(&count).Error
	return count, err
}
