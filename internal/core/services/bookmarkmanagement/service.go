package bookmarkmanagement

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/muxmark/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/muxmark/internal/core/ports"
)

type service struct {
	store    ports.BookmarkStore
	resolver ports.PathResolver
}

// NewService creates a new bookmark management service.
// It panics if the store or the resolver is nil.
func NewService(store ports.BookmarkStore, resolver ports.PathResolver) ports.BookmarkService {
	if store == nil {
		panic("store cannot be nil")
	}
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	return &service{store: store, resolver: resolver}
}

// validateAlias rejects aliases the store format cannot represent.
func validateAlias(alias string) error {
	if alias == "" {
		return fmt.Errorf("alias cannot be empty")
	}
	if strings.ContainsAny(alias, " \t\n") {
		return fmt.Errorf("alias '%s' must not contain whitespace", alias)
	}
	return nil
}

// Add resolves rawPath and stores it under alias, overwriting any existing
// entry for that alias (last write wins).
func (s *service) Add(alias, rawPath string) (bookmark.Bookmark, error) {
	if err := validateAlias(alias); err != nil {
		return bookmark.Bookmark{}, err
	}
	path, err := s.resolver.Resolve(rawPath)
	if err != nil {
		return bookmark.Bookmark{}, fmt.Errorf("failed to resolve path for alias '%s': %w", alias, err)
	}
	b := bookmark.Bookmark{Alias: alias, Path: path}
	if err := s.store.Add(b); err != nil {
		return bookmark.Bookmark{}, fmt.Errorf("failed to store bookmark '%s': %w", alias, err)
	}
	return b, nil
}

// Remove deletes the bookmark for alias.
func (s *service) Remove(alias string) error {
	if err := s.store.Remove(alias); err != nil {
		return fmt.Errorf("failed to remove bookmark '%s': %w", alias, err)
	}
	return nil
}

// Get returns the bookmark for alias.
func (s *service) Get(alias string) (bookmark.Bookmark, error) {
	b, err := s.store.Get(alias)
	if err != nil {
		return bookmark.Bookmark{}, fmt.Errorf("failed to look up bookmark '%s': %w", alias, err)
	}
	return b, nil
}

// List returns all bookmarks in stored order.
func (s *service) List() ([]bookmark.Bookmark, error) {
	bookmarks, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return bookmarks, nil
}
