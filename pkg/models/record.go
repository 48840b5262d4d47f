package models

import (
	"time"
)

// EntryKind distinguishes files from directories in the report
type EntryKind string

const (
	KindFile      EntryKind = "File"
	KindDirectory EntryKind = "Directory"
)

// FileRecord contains the collected metadata for one filesystem entry.
// A record is created exactly once by the entry processor, fully populated
// before it reaches the collector, and immutable afterwards.
type FileRecord struct {
	Name        string    // Base name
	Path        string    // Absolute path, identity and sort key
	Kind        EntryKind // File or Directory
	Extension   string    // With leading dot, empty for directories
	Size        *int64    // Files: byte size; directories: aggregated subtree size
	Permissions string    // Sorted, comma-joined capability names
	Owner       string    // DOMAIN\account
	CreatedAt   time.Time // Creation timestamp
	ModifiedAt  time.Time // Last modification timestamp

	// Immediate-children counts, present for directories only
	ItemCount   *int
	FileCount   *int
	FolderCount *int
}

// IsDir reports whether the record describes a directory
func (r *FileRecord) IsDir() bool {
	return r.Kind == KindDirectory
}
