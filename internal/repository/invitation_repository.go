package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// InvitationRepository defines the interface for invitation data access.
// Invitations are never deleted; Deactivate is the only way to retire one.
type InvitationRepository interface {
	Create(ctx context.Context, invitation *domain.BoardInvitation) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardInvitation, error)
	FindByCode(ctx context.Context, code string) (*domain.BoardInvitation, error)
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardInvitation, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	IncrementUses(ctx context.Context, id uuid.UUID) error
	CountActive(ctx context.Context, now time.Time) (int64, error)
}

// invitationRepositoryImpl is the GORM implementation of InvitationRepository
type invitationRepositoryImpl struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new instance of InvitationRepository
func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepositoryImpl{db: db}
}

// Create creates a new invitation
func (r *invitationRepositoryImpl) Create(ctx context.Context, invitation *domain.BoardInvitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

// FindByID finds an invitation by its ID
func (r *invitationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardInvitation, error) {
	var invitation domain.BoardInvitation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

// FindByCode finds an invitation by its code
func (r *invitationRepositoryImpl) FindByCode(ctx context.Context, code string) (*domain.BoardInvitation, error) {
	var invitation domain.BoardInvitation
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&invitation).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

// FindByBoardID returns all invitations of a board, newest first
func (r *invitationRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardInvitation, error) {
	var invitations []*domain.BoardInvitation
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at DESC").
		Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

// Deactivate sets is_active to false. Deactivating twice is a no-op.
func (r *invitationRepositoryImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.BoardInvitation{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// IncrementUses bumps uses_count in a single UPDATE statement
func (r *invitationRepositoryImpl) IncrementUses(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.BoardInvitation{}).
		Where("id = ?", id).
		UpdateColumn("uses_count", gorm.Expr("uses_count + ?", 1)).Error
}

// CountActive counts invitations that are active and not expired at now
func (r *invitationRepositoryImpl) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.BoardInvitation{}).
		Where("is_active = ?", true).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Count(&count).Error
	return count, err
}
