package dto

import (
	"time"

	"github.com/google/uuid"
)

// BoardExportResponse is returned after a board snapshot has been uploaded
// @Description downloadUrl is a presigned GET URL valid until expiresAt
type BoardExportResponse struct {
	ExportID    uuid.UUID  `json:"exportId" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	BoardID     uuid.UUID  `json:"boardId" example:"1275eac5-f0f9-4bee-8235-576a0042f42b"`
	FileKey     string     `json:"fileKey" example:"kanban/exports/1275eac5-f0f9-4bee-8235-576a0042f42b/2024/01/3fa85f64-5717-4562-b3fc-2c963f66afa6.json"`
	ListCount   int        `json:"listCount" example:"3"`
	CardCount   int        `json:"cardCount" example:"17"`
	DownloadURL string     `json:"downloadUrl,omitempty" example:"https://bucket.s3.amazonaws.com/kanban/exports/..."`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty" example:"2024-01-15T10:45:00Z"`
	CreatedAt   time.Time  `json:"createdAt" example:"2024-01-15T10:30:00Z"`
}

// BoardSnapshot is the document written to object storage
type BoardSnapshot struct {
	ExportedAt time.Time      `json:"exportedAt"`
	Board      BoardResponse  `json:"board"`
	Lists      []ListResponse `json:"lists"`
}
