package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// ExportRepository defines the interface for board export records
type ExportRepository interface {
	Create(ctx context.Context, export *domain.BoardExport) error
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardExport, error)
}

// exportRepositoryImpl is the GORM implementation of ExportRepository
type exportRepositoryImpl struct {
	db *gorm.DB
}

// NewExportRepository creates a new instance of ExportRepository
func NewExportRepository(db *gorm.DB) ExportRepository {
	return &exportRepositoryImpl{db: db}
}

// Create records a completed export
func (r *exportRepositoryImpl) Create(ctx context.Context, export *domain.BoardExport) error {
	return r.db.WithContext(ctx).Create(export).Error
}

// FindByBoardID returns the exports of a board, newest first
func (r *exportRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardExport, error) {
	var exports []*domain.BoardExport
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at DESC").
		Find(&exports).Error; err != nil {
		return nil, err
	}
	return exports, nil
}
