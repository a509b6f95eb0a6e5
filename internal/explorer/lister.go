package explorer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
)

// Lister enumerates the immediate children of a directory inside the
// root boundary, optionally filtered by a glob pattern on the entry name.
type Lister struct {
	resolver *Resolver
	glob     string
}

// NewLister creates a lister with the given glob filter. An empty pattern
// means "*" (no filtering).
func NewLister(resolver *Resolver, glob string) *Lister {
	if glob == "" {
		glob = "*"
	}
	return &Lister{resolver: resolver, glob: glob}
}

// List returns the entries of the requested directory, directories first,
// each group sorted by name case-insensitively. The requested path goes
// through boundary resolution; a file path fails with ErrNotADirectory and
// an unreadable directory with ErrAccessDenied.
func (l *Lister) List(requested string) ([]Entry, error) {
	dir, err := l.resolver.ResolveDir(requested)
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("read %q: %w", requested, ErrAccessDenied)
		}
		return nil, fmt.Errorf("read %q: %w", requested, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		match, err := doublestar.Match(l.glob, de.Name())
		if err != nil {
			return nil, fmt.Errorf("bad glob pattern %q: %w", l.glob, err)
		}
		if !match {
			continue
		}
		entries = append(entries, l.buildEntry(dir, de))
	}

	sortEntries(entries)
	logrus.Debugf("Listed %d entries in %s (glob %q)", len(entries), dir, l.glob)
	return entries, nil
}

// buildEntry converts a single dir entry into an Entry. Stat failures
// (broken symlinks, races with deletion) degrade to KindUnknown instead of
// failing the whole listing.
func (l *Lister) buildEntry(dir string, de os.DirEntry) Entry {
	path := filepath.Join(dir, de.Name())

	// Stat follows symlinks, so a link to a directory lists as a directory.
	info, err := os.Stat(path)
	if err != nil {
		logrus.Debugf("Failed to stat %s: %v", path, err)
		return Entry{Name: de.Name(), Kind: KindUnknown, Path: path}
	}

	entry := Entry{
		Name:        de.Name(),
		Path:        path,
		ModTime:     info.ModTime(),
		Permissions: fmt.Sprintf("%03o", info.Mode().Perm()),
	}
	if info.IsDir() {
		entry.Kind = KindDirectory
	} else {
		entry.Kind = KindFile
		entry.Size = info.Size()
	}
	return entry
}

// sortEntries orders directories before files, then by lowercased name
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].IsDir(), entries[j].IsDir()
		if di != dj {
			return di
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}
