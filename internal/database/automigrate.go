package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

// Models lists every table owned by the service, parents before children
func Models() []interface{} {
	return []interface{}{
		&domain.Board{},
		&domain.BoardMember{},
		&domain.BoardInvitation{},
		&domain.List{},
		&domain.Card{},
		&domain.BoardExport{},
	}
}

// AutoMigrate creates or updates tables and indexes for all domain models
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// AutoMigrateWithRetry runs AutoMigrate up to maxRetries times with linear backoff
func AutoMigrateWithRetry(db *gorm.DB, log *zap.Logger, maxRetries int) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = AutoMigrate(db)
		if err == nil {
			log.Info("Database migrations completed",
				zap.Int("attempt", attempt),
				zap.Int("tables", len(Models())),
			)
			return nil
		}

		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			log.Warn("Migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}
	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
