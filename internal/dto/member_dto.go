package dto

import (
	"time"

	"github.com/google/uuid"
)

// MemberResponse represents a board membership
type MemberResponse struct {
	ID       uuid.UUID `json:"memberId" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	BoardID  uuid.UUID `json:"boardId" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	UserID   uuid.UUID `json:"userId" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	Email    string    `json:"email,omitempty" example:"member@example.com"`
	Role     string    `json:"role" example:"editor"`
	JoinedAt time.Time `json:"joinedAt" example:"2024-01-15T10:30:00Z"`
}
