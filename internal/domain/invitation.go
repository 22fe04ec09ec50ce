package domain

import (
	"time"

	"github.com/google/uuid"
)

// BoardInvitation is a reusable, role-granting code scoped to one board.
// It is never deleted; revocation flips IsActive to false.
type BoardInvitation struct {
	BaseModel
	BoardID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_board_invitations_board_id" json:"board_id"`
	Code      string     `gorm:"type:varchar(64);not null;uniqueIndex:uq_board_invitations_code" json:"code"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	ExpiresAt *time.Time `gorm:"type:timestamp;index:idx_board_invitations_expires_at" json:"expires_at"`
	IsActive  bool       `gorm:"not null;default:true;index:idx_board_invitations_is_active" json:"is_active"`
	UsesCount int        `gorm:"not null;default:0" json:"uses_count"`
	Role      Role       `gorm:"type:varchar(20);not null" json:"role"`
}

// TableName specifies the table name for BoardInvitation
func (BoardInvitation) TableName() string {
	return "board_invitations"
}

// IsExpired returns true if the invitation has an expiry in the past relative to now.
// A nil ExpiresAt never expires.
func (i *BoardInvitation) IsExpired(now time.Time) bool {
	if i.ExpiresAt == nil {
		return false
	}
	return now.After(*i.ExpiresAt)
}
