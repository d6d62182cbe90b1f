package sessiondirection

import (
	"fmt"
	"os"
	"slices"

	"github.com/AntonioJCosta/muxmark/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/muxmark/internal/core/domain/session"
	"github.com/AntonioJCosta/muxmark/internal/core/ports"
)

type service struct {
	store         ports.BookmarkStore
	mux           ports.Multiplexer
	sessionPrefix string
}

// NewService creates a new session direction service.
// It panics if the store or the multiplexer is nil.
func NewService(store ports.BookmarkStore, mux ports.Multiplexer, sessionPrefix string) ports.SessionDirector {
	if store == nil {
		panic("store cannot be nil")
	}
	if mux == nil {
		panic("mux cannot be nil")
	}
	return &service{store: store, mux: mux, sessionPrefix: sessionPrefix}
}

/*
Go looks up alias, verifies its directory still exists, then attaches to the
session derived from that directory, creating it first if the multiplexer
does not know it yet. The attach blocks until the user detaches. A stale
bookmark is reported but never removed; the user must remove it explicitly.
*/
func (s *service) Go(alias string) error {
	b, err := s.store.Get(alias)
	if err != nil {
		return fmt.Errorf("failed to look up bookmark '%s': %w", alias, err)
	}

	info, err := os.Stat(b.Path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: '%s' points to %s", bookmark.ErrStalePath, alias, b.Path)
	}

	target := session.TargetFor(s.sessionPrefix, b.Path)

	names, err := s.mux.ListSessions()
	if err != nil {
		return fmt.Errorf("%w: listing sessions: %v", bookmark.ErrMultiplexer, err)
	}

	if !slices.Contains(names, target.Name) {
		if err := s.mux.CreateSession(target.Name, target.Path); err != nil {
			return fmt.Errorf("%w: creating session '%s': %v", bookmark.ErrMultiplexer, target.Name, err)
		}
	}

	if err := s.mux.AttachSession(target.Name); err != nil {
		return fmt.Errorf("%w: attaching to session '%s': %v", bookmark.ErrMultiplexer, target.Name, err)
	}
	return nil
}
