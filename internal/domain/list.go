package domain

import "github.com/google/uuid"

// List is an ordered column within a board
type List struct {
	BaseModel
	BoardID  uuid.UUID `gorm:"type:uuid;not null;index:idx_lists_board_position,priority:1" json:"board_id"`
	Title    string    `gorm:"type:varchar(255);not null" json:"title"`
	Position int       `gorm:"not null;index:idx_lists_board_position,priority:2" json:"position"`
	Cards    []Card    `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"cards,omitempty"`
}

// TableName specifies the table name for List
func (List) TableName() string {
	return "lists"
}
