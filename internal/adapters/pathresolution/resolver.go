/*
Package pathresolution canonicalizes user-supplied path arguments against
the real filesystem.
*/
package pathresolution

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/muxmark/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/muxmark/internal/core/ports"
)

// Resolver implements the PathResolver interface over the OS filesystem.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() ports.PathResolver {
	return &Resolver{}
}

/*
Resolve canonicalizes rawPath. An empty rawPath means the current working
directory; a relative one resolves against it. Symlinks and dot segments are
evaluated so every spelling of a directory stores as the same string, which
is what keeps session names stable across invocations.
*/
func (r *Resolver) Resolve(rawPath string) (string, error) {
	path := rawPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine working directory: %w", err)
		}
		path = cwd
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: '%s'", bookmark.ErrInvalidPath, rawPath)
	}

	// EvalSymlinks fails on nonexistent paths, covering the existence check.
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: '%s'", bookmark.ErrInvalidPath, path)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", fmt.Errorf("%w: '%s'", bookmark.ErrInvalidPath, canonical)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: '%s' is not a directory", bookmark.ErrInvalidPath, canonical)
	}
	return filepath.Clean(canonical), nil
}
