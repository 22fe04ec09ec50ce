package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"kanban-board-api/internal/domain"
)

func TestExportRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExportRepository(db)
	ctx := context.Background()
	board := createBoard(t, db, uuid.New(), domain.VisibilityPrivate)

	export := &domain.BoardExport{
		BoardID:     board.ID,
		RequestedBy: board.OwnerID,
		FileKey:     "kanban/exports/x.json",
		ListCount:   2,
		CardCount:   5,
		Summary:     datatypes.JSON(`{"Todo":3,"Done":2}`),
	}
	require.NoError(t, repo.Create(ctx, export))

	exports, err := repo.FindByBoardID(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, exports, 1)
	assert.Equal(t, 5, exports[0].CardCount)
	assert.JSONEq(t, `{"Todo":3,"Done":2}`, string(exports[0].Summary))
}
