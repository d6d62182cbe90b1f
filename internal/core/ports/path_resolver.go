package ports

/*
PathResolver defines the interface for turning a user-supplied path argument
into the canonical absolute path that gets stored. This is a driven port
backed by the filesystem.
*/
type PathResolver interface {
	/*
	   Resolve canonicalizes rawPath: an empty rawPath defaults to the
	   current working directory, a relative one resolves against it, and
	   symlinks and dot segments are eliminated so two spellings of the same
	   directory always resolve to the same string. It returns
	   bookmark.ErrInvalidPath if the result does not exist or is not a
	   directory.
	*/
	Resolve(rawPath string) (string, error)
}
