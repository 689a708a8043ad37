package ingest

import "time"

// IngestionResult summarizes one ingested scan.
type IngestionResult struct {
	SourcePath   string
	DocumentID   string
	FormID       string
	Deduplicated bool
	HashHex      string
	FileExt      string
	UploadedAt   time.Time
	Err          string
}

// DirStats aggregates a directory walk.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}
