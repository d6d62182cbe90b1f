package ports

import "github.com/AntonioJCosta/muxmark/internal/core/domain/bookmark"

// BookmarkService defines the contract for managing directory bookmarks.
type BookmarkService interface {
	// Add resolves rawPath to its canonical form and stores it under alias,
	// overwriting any existing entry for that alias. It returns the stored
	// bookmark.
	Add(alias, rawPath string) (bookmark.Bookmark, error)

	// Remove deletes the bookmark for alias.
	Remove(alias string) error

	// Get returns the bookmark for alias.
	Get(alias string) (bookmark.Bookmark, error)

	// List returns all bookmarks in stored order.
	List() ([]bookmark.Bookmark, error)
}
