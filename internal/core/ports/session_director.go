package ports

/*
SessionDirector turns an alias into live terminal control of a multiplexer
session anchored at the bookmarked directory.
*/
type SessionDirector interface {
	/*
	   Go looks up alias, derives the session name for its directory, then
	   attaches to that session, creating it first if it does not exist.
	   On success the call blocks until the user detaches from the
	   multiplexer. Repeated calls for the same alias land in the same
	   session.
	*/
	Go(alias string) error
}
