package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// ListRepository defines the interface for list data access
type ListRepository interface {
	Create(ctx context.Context, list *domain.List) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.List, error)
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.List, error)
	MaxPosition(ctx context.Context, boardID uuid.UUID) (int, bool, error)
	Update(ctx context.Context, list *domain.List) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// listRepositoryImpl is the GORM implementation of ListRepository
type listRepositoryImpl struct {
	db *gorm.DB
}

// NewListRepository creates a new instance of ListRepository
func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepositoryImpl{db: db}
}

// Create creates a new list
func (r *listRepositoryImpl) Create(ctx context.Context, list *domain.List) error {
	return r.db.WithContext(ctx).Create(list).Error
}

// FindByID finds a list by its ID
func (r *listRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	var list domain.List
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// FindByBoardID returns the lists of a board ordered by position
func (r *listRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.List, error) {
	var lists []*domain.List
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("position ASC, created_at ASC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

// MaxPosition returns the highest list position on the board.
// The bool is false when the board has no lists.
func (r *listRepositoryImpl) MaxPosition(ctx context.Context, boardID uuid.UUID) (int, bool, error) {
	var result positionResult
	err := r.db.WithContext(ctx).
		Model(&domain.List{}).
		Select("MAX(position) AS max_position").
		Where("board_id = ?", boardID).
		Scan(&result).Error
	if err != nil {
		return 0, false, err
	}
	if result.MaxPosition == nil {
		return 0, false, nil
	}
	return *result.MaxPosition, true, nil
}

// Update saves the list title
func (r *listRepositoryImpl) Update(ctx context.Context, list *domain.List) error {
	return r.db.WithContext(ctx).
		Model(list).
		Select("title", "updated_at").
		Updates(list).Error
}

// Delete removes a list and its cards. Remaining positions are left as they are.
func (r *listRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("list_id = ?", id).Delete(&domain.Card{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.List{}).Error
	})
}

// Count returns the total number of lists
func (r *listRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.List{}).Count(&count).Error
	return count, err
}

// positionResult receives MAX(position), which is NULL on an empty parent
type positionResult struct {
	MaxPosition *int
}
