/*
Package bookmark defines the core domain entity for a directory bookmark.
*/
package bookmark

/*
Bookmark represents a stored bookmark, consisting of a short user-chosen
alias and the absolute, canonicalized directory path it points at. This is
a core domain entity.
*/
type Bookmark struct {
	Alias string
	Path  string
}
