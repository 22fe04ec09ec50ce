package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kanban-board-api/internal/domain"
)

func newInvitation(boardID uuid.UUID, code string) *domain.BoardInvitation {
	return &domain.BoardInvitation{
		BoardID:   boardID,
		Code:      code,
		CreatedBy: uuid.New(),
		IsActive:  true,
		Role:      domain.RoleEditor,
	}
}

func TestInvitationRepository_FindByCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()
	board := createBoard(t, db, uuid.New(), domain.VisibilityPrivate)

	inv := newInvitation(board.ID, "Code1234abcd")
	require.NoError(t, repo.Create(ctx, inv))

	found, err := repo.FindByCode(ctx, "Code1234abcd")
	require.NoError(t, err)
	assert.Equal(t, inv.ID, found.ID)
	assert.True(t, found.IsActive)
	assert.Equal(t, 0, found.UsesCount)

	// codes are case-sensitive
	_, err = repo.FindByCode(ctx, "code1234abcd")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestInvitationRepository_DuplicateCodeRejected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()
	board := createBoard(t, db, uuid.New(), domain.VisibilityPrivate)

	require.NoError(t, repo.Create(ctx, newInvitation(board.ID, "SAMECODE0001")))
	assert.Error(t, repo.Create(ctx, newInvitation(board.ID, "SAMECODE0001")))
}

func TestInvitationRepository_FindByBoardID_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()
	board := createBoard(t, db, uuid.New(), domain.VisibilityPrivate)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, code := range []string{"first0000000", "second000000", "third0000000"} {
		inv := newInvitation(board.ID, code)
		inv.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(ctx, inv))
	}
	require.NoError(t, repo.Create(ctx, newInvitation(uuid.New(), "otherboard00")))

	invitations, err := repo.FindByBoardID(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, invitations, 3)
	assert.Equal(t, "third0000000", invitations[0].Code)
	assert.Equal(t, "first0000000", invitations[2].Code)
}

func TestInvitationRepository_DeactivateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()
	board := createBoard(t, db, uuid.New(), domain.VisibilityPrivate)
	inv := newInvitation(board.ID, "revokeme0000")
	require.NoError(t, repo.Create(ctx, inv))

	require.NoError(t, repo.Deactivate(ctx, inv.ID))
	require.NoError(t, repo.Deactivate(ctx, inv.ID))

	found, err := repo.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)
}

func TestInvitationRepository_IncrementUses(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()
	board := createBoard(t, db, uuid.New(), domain.VisibilityPrivate)
	inv := newInvitation(board.ID, "counter00000")
	require.NoError(t, repo.Create(ctx, inv))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementUses(ctx, inv.ID))
	}

	found, err := repo.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.UsesCount)
}

func TestInvitationRepository_CountActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()
	board := createBoard(t, db, uuid.New(), domain.VisibilityPrivate)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	noExpiry := newInvitation(board.ID, "noexpiry0000")
	require.NoError(t, repo.Create(ctx, noExpiry))

	valid := newInvitation(board.ID, "valid0000000")
	valid.ExpiresAt = &future
	require.NoError(t, repo.Create(ctx, valid))

	expired := newInvitation(board.ID, "expired00000")
	expired.ExpiresAt = &past
	require.NoError(t, repo.Create(ctx, expired))

	revoked := newInvitation(board.ID, "revoked00000")
	require.NoError(t, repo.Create(ctx, revoked))
	require.NoError(t, repo.Deactivate(ctx, revoked.ID))

	count, err := repo.CountActive(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
