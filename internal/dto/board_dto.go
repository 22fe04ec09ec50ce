package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBoardRequest represents the request to create a new board
// @Description The caller becomes the board owner. visibility defaults to private.
type CreateBoardRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255" example:"Sprint 12"`
	Description string `json:"description" binding:"max=2000" example:"Work planned for the second half of March"`
	Visibility  string `json:"visibility" binding:"omitempty,oneof=private public" example:"private"`
}

// UpdateBoardRequest represents the request to rename or describe a board
// @Description All fields are optional. Requires edit permission.
type UpdateBoardRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255" example:"Sprint 12 (extended)"`
	Description *string `json:"description" binding:"omitempty,max=2000" example:"Scope moved to April"`
}

// UpdateVisibilityRequest changes board visibility. Owner only.
type UpdateVisibilityRequest struct {
	Visibility string `json:"visibility" binding:"required,oneof=private public" example:"public"`
}

// BoardResponse represents a board without its content
type BoardResponse struct {
	ID          uuid.UUID `json:"boardId" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	Name        string    `json:"name" example:"Sprint 12"`
	Description string    `json:"description" example:"Work planned for the second half of March"`
	Visibility  string    `json:"visibility" example:"private"`
	OwnerID     uuid.UUID `json:"ownerId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	CreatedAt   time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2024-01-15T14:20:00Z"`
}

// BoardDetailResponse represents a board with its lists and cards
// @Description lists are ordered by position ascending, and so are the cards within each list
type BoardDetailResponse struct {
	BoardResponse
	Lists []ListResponse `json:"lists"`
}

// BoardPermissionsResponse tells the caller what they may do on a board
type BoardPermissionsResponse struct {
	BoardID uuid.UUID `json:"boardId" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	CanRead bool      `json:"canRead" example:"true"`
	CanEdit bool      `json:"canEdit" example:"true"`
	IsOwner bool      `json:"isOwner" example:"false"`
}
