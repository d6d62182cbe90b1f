package bookmarkfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/muxmark/internal/core/domain/bookmark"
)

func (s *Store) readAll() ([]bookmark.Bookmark, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // No file yet means an empty store.
		}
		return nil, fmt.Errorf("failed to open bookmark file %s: %w", s.filePath, err)
	}
	defer file.Close()

	var entries []bookmark.Bookmark
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if b, ok := parseLine(scanner.Text()); ok {
			entries = append(entries, b)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning bookmark file %s: %w", s.filePath, err)
	}
	return entries, nil
}

// parseLine splits one "alias<TAB>path" record. Blank and malformed lines
// are skipped rather than treated as errors.
func parseLine(line string) (bookmark.Bookmark, bool) {
	if strings.TrimSpace(line) == "" {
		return bookmark.Bookmark{}, false
	}
	parts := strings.SplitN(line, delimiter, 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return bookmark.Bookmark{}, false
	}
	return bookmark.Bookmark{Alias: parts[0], Path: parts[1]}, true
}

// writeAll rewrites the whole store: the new content goes to a temp file in
// the same directory, which then replaces the store file via rename.
func (s *Store) writeAll(entries []bookmark.Bookmark) error {
	dir := filepath.Dir(s.filePath)
	tmp, err := os.CreateTemp(dir, storeFilename+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	for _, e := range entries {
		if _, err := fmt.Fprintf(tmp, "%s%s%s\n", e.Alias, delimiter, e.Path); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("failed to write bookmark file: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp bookmark file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set bookmark file permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.filePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace bookmark file %s: %w", s.filePath, err)
	}
	return nil
}
