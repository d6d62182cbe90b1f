/*
Package bookmarkfile persists bookmarks as a single flat text file, one
tab-delimited "alias<TAB>path" record per line, in stored order. Every
mutation rewrites the whole file through a temp-file-then-rename replace so
a failed write never corrupts the previous state.
*/
package bookmarkfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/muxmark/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/muxmark/internal/core/ports"
)

const storeFilename = "bookmarks"
const delimiter = "\t"

// Store provides access to the bookmark file via the file system.
type Store struct {
	filePath string
}

// NewStore creates a Store backed by the "bookmarks" file inside dir.
// dir must already exist; the file itself is created lazily on first Add.
func NewStore(dir string) (ports.BookmarkStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("store directory cannot be empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("store directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("store path %s is not a directory", dir)
	}
	return &Store{filePath: filepath.Join(dir, storeFilename)}, nil
}

// Add implements the ports.BookmarkStore interface. An existing entry with
// the same alias is overwritten in place, keeping its position in the file.
func (s *Store) Add(b bookmark.Bookmark) error {
	if strings.Contains(b.Alias, delimiter) || strings.Contains(b.Path, delimiter) {
		return fmt.Errorf("%w: bookmark fields must not contain a tab character", bookmark.ErrInvalidPath)
	}

	entries, err := s.readAll()
	if err != nil {
		return err
	}

	replaced := false
	for i := range entries {
		if entries[i].Alias == b.Alias {
			entries[i] = b
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, b)
	}
	return s.writeAll(entries)
}

// Remove implements the ports.BookmarkStore interface.
func (s *Store) Remove(alias string) error {
	entries, err := s.readAll()
	if err != nil {
		return err
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.Alias == alias {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return fmt.Errorf("%w: '%s'", bookmark.ErrUnknownAlias, alias)
	}
	return s.writeAll(kept)
}

// Get implements the ports.BookmarkStore interface.
func (s *Store) Get(alias string) (bookmark.Bookmark, error) {
	entries, err := s.readAll()
	if err != nil {
		return bookmark.Bookmark{}, err
	}
	for _, e := range entries {
		if e.Alias == alias {
			return e, nil
		}
	}
	return bookmark.Bookmark{}, fmt.Errorf("%w: '%s'", bookmark.ErrUnknownAlias, alias)
}

// List implements the ports.BookmarkStore interface. The file is re-read on
// every call; nothing is cached between invocations.
func (s *Store) List() ([]bookmark.Bookmark, error) {
	return s.readAll()
}
