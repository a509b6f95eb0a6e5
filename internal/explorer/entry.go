package explorer

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// EntryKind classifies a directory entry
type EntryKind int

// Entry kind constants
const (
	KindFile EntryKind = iota
	KindDirectory
	KindUnknown
)

// String returns a display name for the entry kind
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Entry represents a single item in a directory listing.
// Entries are built fresh on every listing call and never cached.
type Entry struct {
	Name        string
	Kind        EntryKind
	Path        string // absolute, inside the root boundary
	Size        int64  // zero for directories and unknown entries
	ModTime     time.Time
	Permissions string // octal, e.g. "644"; empty when stat failed
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// DisplaySize returns a human readable size, or a dash for entries
// that have no meaningful size
func (e Entry) DisplaySize() string {
	if e.Kind != KindFile {
		return "-"
	}
	return humanize.IBytes(uint64(e.Size))
}

// DisplayModTime returns the formatted modification time, or "N/A" for
// entries whose metadata could not be read
func (e Entry) DisplayModTime() string {
	if e.ModTime.IsZero() {
		return "N/A"
	}
	return e.ModTime.Format("2006-01-02 15:04:05")
}

// String implements fmt.Stringer for log output
func (e Entry) String() string {
	return fmt.Sprintf("%s (%s)", e.Path, e.Kind)
}
