package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kanban-board-api/internal/database"
	"kanban-board-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection to :memory: would get its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createBoard(t *testing.T, db *gorm.DB, owner uuid.UUID, visibility domain.Visibility) *domain.Board {
	t.Helper()
	board := &domain.Board{Name: "Board", OwnerID: owner, Visibility: visibility}
	require.NoError(t, NewBoardRepository(db).Create(context.Background(), board))
	return board
}
