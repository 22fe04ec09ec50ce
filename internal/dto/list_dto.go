package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateListRequest represents the request to append a list to a board
type CreateListRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255" example:"To Do"`
}

// UpdateListRequest represents the request to rename a list
type UpdateListRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255" example:"Doing"`
}

// ListResponse represents a list and, when loaded, its cards
type ListResponse struct {
	ID        uuid.UUID      `json:"listId" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	BoardID   uuid.UUID      `json:"boardId" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	Title     string         `json:"title" example:"To Do"`
	Position  int            `json:"position" example:"0"`
	Cards     []CardResponse `json:"cards,omitempty"`
	CreatedAt time.Time      `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}
