package domain

import "github.com/google/uuid"

// Card is an ordered work item within a list
type Card struct {
	BaseModel
	ListID      uuid.UUID `gorm:"type:uuid;not null;index:idx_cards_list_position,priority:1" json:"list_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Position    int       `gorm:"not null;index:idx_cards_list_position,priority:2" json:"position"`
}

// TableName specifies the table name for Card
func (Card) TableName() string {
	return "cards"
}
