package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BoardExport records a board snapshot uploaded to object storage
type BoardExport struct {
	BaseModel
	BoardID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_board_exports_board_id" json:"board_id"`
	RequestedBy uuid.UUID      `gorm:"type:uuid;not null" json:"requested_by"`
	FileKey     string         `gorm:"type:text;not null" json:"file_key"`
	ListCount   int            `gorm:"not null" json:"list_count"`
	CardCount   int            `gorm:"not null" json:"card_count"`
	Summary     datatypes.JSON `gorm:"type:jsonb" json:"summary"`
}

// TableName specifies the table name for BoardExport
func (BoardExport) TableName() string {
	return "board_exports"
}
