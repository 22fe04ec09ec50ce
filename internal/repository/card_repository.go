package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// CardRepository defines the interface for card data access
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	FindByListID(ctx context.Context, listID uuid.UUID) ([]*domain.Card, error)
	MaxPosition(ctx context.Context, listID uuid.UUID) (int, bool, error)
	Update(ctx context.Context, card *domain.Card) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// cardRepositoryImpl is the GORM implementation of CardRepository
type cardRepositoryImpl struct {
	db *gorm.DB
}

// NewCardRepository creates a new instance of CardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepositoryImpl{db: db}
}

// Create creates a new card
func (r *cardRepositoryImpl) Create(ctx context.Context, card *domain.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// FindByID finds a card by its ID
func (r *cardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	var card domain.Card
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByListID returns the cards of a list ordered by position
func (r *cardRepositoryImpl) FindByListID(ctx context.Context, listID uuid.UUID) ([]*domain.Card, error) {
	var cards []*domain.Card
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("position ASC, created_at ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// MaxPosition returns the highest card position in the list.
// The bool is false when the list is empty.
func (r *cardRepositoryImpl) MaxPosition(ctx context.Context, listID uuid.UUID) (int, bool, error) {
	var result positionResult
	err := r.db.WithContext(ctx).
		Model(&domain.Card{}).
		Select("MAX(position) AS max_position").
		Where("list_id = ?", listID).
		Scan(&result).Error
	if err != nil {
		return 0, false, err
	}
	if result.MaxPosition == nil {
		return 0, false, nil
	}
	return *result.MaxPosition, true, nil
}

// Update saves title and description
func (r *cardRepositoryImpl) Update(ctx context.Context, card *domain.Card) error {
	return r.db.WithContext(ctx).
		Model(card).
		Select("title", "description", "updated_at").
		Updates(card).Error
}

// Delete removes a card
func (r *cardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Card{}).Error
}

// Count returns the total number of cards
func (r *cardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Card{}).Count(&count).Error
	return count, err
}
