package explorer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Resolver canonicalizes user-supplied paths and enforces the root boundary.
// The root is fixed at construction; every resolved path must be the root
// itself or a descendant of it. Symlinks and ".." segments are resolved
// before the boundary check so they cannot be used to escape.
type Resolver struct {
	root string // absolute, symlink-resolved
}

// NewResolver creates a resolver for the given root boundary.
// The root must exist and be a directory.
func NewResolver(root string) (*Resolver, error) {
	if !filepath.IsAbs(root) {
		return nil, fmt.Errorf("root must be an absolute path, got %q", root)
	}

	resolved, err := filepath.EvalSymlinks(filepath.Clean(root))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %q: %w", root, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %q: %w", root, ErrNotADirectory)
	}

	return &Resolver{root: resolved}, nil
}

// Root returns the canonical root boundary
func (r *Resolver) Root() string {
	return r.root
}

// Resolve canonicalizes the requested path and verifies it stays inside the
// root boundary. Relative paths are interpreted against the root. The path
// must exist; broken symlinks and missing files surface the underlying
// filesystem error.
func (r *Resolver) Resolve(requested string) (string, error) {
	path := requested
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.root, path)
	}
	path = filepath.Clean(path)

	// Resolve symlinks before checking the boundary, otherwise a link
	// inside the root could point anywhere.
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if os.IsPermission(err) {
			return "", fmt.Errorf("resolve %q: %w", requested, ErrAccessDenied)
		}
		return "", fmt.Errorf("resolve %q: %w", requested, err)
	}

	if !r.contains(resolved) {
		logrus.Warnf("Rejected path %q: resolves to %q outside root %q", requested, resolved, r.root)
		return "", fmt.Errorf("resolve %q: %w", requested, ErrPathEscape)
	}

	return resolved, nil
}

// ResolveDir resolves the requested path and additionally requires it to be
// a directory
func (r *Resolver) ResolveDir(requested string) (string, error) {
	resolved, err := r.Resolve(requested)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if os.IsPermission(err) {
			return "", fmt.Errorf("stat %q: %w", requested, ErrAccessDenied)
		}
		return "", fmt.Errorf("stat %q: %w", requested, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q: %w", requested, ErrNotADirectory)
	}

	return resolved, nil
}

// Parent returns the parent directory of path, clamped at the root boundary
func (r *Resolver) Parent(path string) string {
	if path == r.root {
		return r.root
	}
	parent := filepath.Dir(path)
	if !r.contains(parent) {
		return r.root
	}
	return parent
}

// contains reports whether path equals the root or is a descendant of it
func (r *Resolver) contains(path string) bool {
	if path == r.root {
		return true
	}
	prefix := r.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}
