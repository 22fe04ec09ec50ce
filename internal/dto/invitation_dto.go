package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateInvitationRequest represents the request to create an invitation code
// @Description role defaults to editor. expiresIn is in hours; omit it for a code that never expires.
type CreateInvitationRequest struct {
	Role      string `json:"role" binding:"omitempty,oneof=viewer editor owner" example:"editor"`
	ExpiresIn *int   `json:"expiresIn" binding:"omitempty,min=1,max=8760" example:"72"`
}

// InvitationResponse represents an invitation as seen by the board owner
type InvitationResponse struct {
	ID        uuid.UUID  `json:"invitationId" example:"9b2d1a4e-3c4f-4a8b-9e21-6f7d8c9a0b1c"`
	BoardID   uuid.UUID  `json:"boardId" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	Code      string     `json:"code" example:"Xk3pQ9rT2mVa"`
	Role      string     `json:"role" example:"editor"`
	CreatedBy uuid.UUID  `json:"createdBy" example:"a1b2c3d4-e5f6-7890-abcd-ef1234567890"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty" example:"2024-01-18T10:30:00Z"`
	IsActive  bool       `json:"isActive" example:"true"`
	UsesCount int        `json:"usesCount" example:"3"`
	CreatedAt time.Time  `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}

// InvitationPreviewResponse describes an invitation before it is accepted
// @Description status is one of valid, revoked, expired
type InvitationPreviewResponse struct {
	BoardID   uuid.UUID  `json:"boardId" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	BoardName string     `json:"boardName" example:"Sprint 12"`
	Role      string     `json:"role" example:"editor"`
	Status    string     `json:"status" example:"valid"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty" example:"2024-01-18T10:30:00Z"`
}

// RedeemInvitationResponse is returned after a successful redemption
type RedeemInvitationResponse struct {
	BoardID uuid.UUID `json:"boardId" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	Role    string    `json:"role" example:"editor"`
}
