package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCardRequest represents the request to append a card to a list
type CreateCardRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255" example:"Write release notes"`
	Description *string `json:"description" binding:"omitempty,max=5000" example:"Cover the invitation flow"`
}

// UpdateCardRequest represents the request to update a card. All fields are optional.
type UpdateCardRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=255" example:"Write release notes v2"`
	Description *string `json:"description" binding:"omitempty,max=5000" example:""`
}

// CardResponse represents a card
type CardResponse struct {
	ID          uuid.UUID `json:"cardId" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	ListID      uuid.UUID `json:"listId" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Title       string    `json:"title" example:"Write release notes"`
	Description *string   `json:"description,omitempty" example:"Cover the invitation flow"`
	Position    int       `json:"position" example:"0"`
	CreatedAt   time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2024-01-15T14:20:00Z"`
}
