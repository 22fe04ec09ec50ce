package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kanban-board-api/internal/domain"
)

// MemberRepository defines the interface for board membership data access
type MemberRepository interface {
	FindByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error)
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardMember, error)
	Upsert(ctx context.Context, member *domain.BoardMember) error
	Delete(ctx context.Context, boardID, userID uuid.UUID) error
}

// memberRepositoryImpl is the GORM implementation of MemberRepository
type memberRepositoryImpl struct {
	db *gorm.DB
}

// NewMemberRepository creates a new instance of MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepositoryImpl{db: db}
}

// FindByBoardAndUser returns the first membership row of the user on the board.
// It returns gorm.ErrRecordNotFound when there is none.
func (r *memberRepositoryImpl) FindByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error) {
	var member domain.BoardMember
	err := r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Order("created_at ASC").
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByBoardID returns every membership row of a board in join order
func (r *memberRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardMember, error) {
	var members []*domain.BoardMember
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Upsert inserts the membership or, when (board_id, user_id) already exists,
// overwrites its role and email
func (r *memberRepositoryImpl) Upsert(ctx context.Context, member *domain.BoardMember) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "board_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "email", "updated_at"}),
	}).Create(member).Error
}

// Delete removes the membership. Deleting a missing row is not an error.
func (r *memberRepositoryImpl) Delete(ctx context.Context, boardID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Delete(&domain.BoardMember{}).Error
}
