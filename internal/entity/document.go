package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudentDocument represents an uploaded scan or PDF for data transfer
// between layers.
type StudentDocument struct {
	ID          uuid.UUID `json:"id"`
	SourcePath  string    `json:"source_path"`
	ContentHash []byte    `json:"content_hash"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int       `json:"file_size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
