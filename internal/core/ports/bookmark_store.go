package ports

import "github.com/AntonioJCosta/muxmark/internal/core/domain/bookmark"

/*
BookmarkStore defines the interface for the persisted alias-to-directory
mapping. This is a driven port, typically implemented by a repository
adapter that owns the on-disk record format.
*/
type BookmarkStore interface {
	/*
	   Add persists b. If an entry with the same alias already exists it is
	   overwritten in place (last write wins); the entry keeps its original
	   position in the store.
	*/
	Add(b bookmark.Bookmark) error

	// Remove deletes the entry for alias and persists the store.
	// It returns bookmark.ErrUnknownAlias if no such entry exists.
	Remove(alias string) error

	// Get returns the entry for alias.
	// It returns bookmark.ErrUnknownAlias if no such entry exists.
	Get(alias string) (bookmark.Bookmark, error)

	// List returns all entries in stored (insertion) order, re-read from
	// the backing store on every call.
	List() ([]bookmark.Bookmark, error)
}
