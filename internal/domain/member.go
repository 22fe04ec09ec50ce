package domain

import "github.com/google/uuid"

// Role is the role a member holds on a board
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleOwner  Role = "owner"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleEditor, RoleOwner:
		return true
	}
	return false
}

// CanEdit reports whether the role may mutate lists and cards.
// The owner role grants editing only; administering the board is reserved
// to Board.OwnerID.
func (r Role) CanEdit() bool {
	return r == RoleEditor || r == RoleOwner
}

// BoardMember associates a user with a board. (BoardID, UserID) is unique.
type BoardMember struct {
	BaseModel
	BoardID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_board_members_board_user,priority:1;index:idx_board_members_board_id" json:"board_id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_board_members_board_user,priority:2;index:idx_board_members_user_id" json:"user_id"`
	Email   string    `gorm:"type:varchar(255)" json:"email"`
	Role    Role      `gorm:"type:varchar(20);not null" json:"role"`
}

// TableName specifies the table name for BoardMember
func (BoardMember) TableName() string {
	return "board_members"
}
