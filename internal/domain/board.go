package domain

import "github.com/google/uuid"

// Visibility controls whether non-members can read a board
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

// IsValid reports whether v is a known visibility
func (v Visibility) IsValid() bool {
	return v == VisibilityPrivate || v == VisibilityPublic
}

// Board is the top-level container of lists and cards.
// OwnerID is set at creation and never changes.
type Board struct {
	BaseModel
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Visibility  Visibility `gorm:"type:varchar(20);not null;default:'private';index:idx_boards_visibility" json:"visibility"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_boards_owner_id" json:"owner_id"`
	Lists       []List     `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"lists,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}

// IsOwnedBy reports whether userID is the literal owner of the board
func (b *Board) IsOwnedBy(userID uuid.UUID) bool {
	return userID != uuid.Nil && b.OwnerID == userID
}
