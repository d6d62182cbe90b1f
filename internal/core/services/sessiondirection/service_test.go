package sessiondirection

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/AntonioJCosta/muxmark/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/muxmark/internal/core/domain/session"
	"github.com/AntonioJCosta/muxmark/internal/core/testutil"
)

func storeWith(b bookmark.Bookmark) *testutil.MockBookmarkStore {
	return &testutil.MockBookmarkStore{
		GetFunc: func(alias string) (bookmark.Bookmark, error) {
			if alias == b.Alias {
				return b, nil
			}
			return bookmark.Bookmark{}, bookmark.ErrUnknownAlias
		},
	}
}

func TestNewService(t *testing.T) {
	t.Run("should panic if store is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil store")
			}
		}()
		_ = NewService(nil, &testutil.MockMultiplexer{}, "")
	})

	t.Run("should panic if mux is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil mux")
			}
		}()
		_ = NewService(&testutil.MockBookmarkStore{}, nil, "")
	})
}

func TestService_Go_UnknownAlias(t *testing.T) {
	svc := NewService(storeWith(bookmark.Bookmark{Alias: "proj", Path: t.TempDir()}), &testutil.MockMultiplexer{}, "")

	if err := svc.Go("nope"); !errors.Is(err, bookmark.ErrUnknownAlias) {
		t.Errorf("Go() error = %v, want bookmark.ErrUnknownAlias", err)
	}
}

func TestService_Go_StalePath(t *testing.T) {
	gone := filepath.Join(t.TempDir(), "gone")
	svc := NewService(storeWith(bookmark.Bookmark{Alias: "proj", Path: gone}), &testutil.MockMultiplexer{}, "")

	if err := svc.Go("proj"); !errors.Is(err, bookmark.ErrStalePath) {
		t.Errorf("Go() error = %v, want bookmark.ErrStalePath", err)
	}
}

func TestService_Go_AttachesExistingSession(t *testing.T) {
	dir := t.TempDir()
	want := session.NameFor("", dir)

	created := false
	attached := ""
	mux := &testutil.MockMultiplexer{
		ListSessionsFunc: func() ([]string, error) {
			return []string{"other", want}, nil
		},
		CreateSessionFunc: func(name, workingDir string) error {
			created = true
			return nil
		},
		AttachSessionFunc: func(name string) error {
			attached = name
			return nil
		},
	}
	svc := NewService(storeWith(bookmark.Bookmark{Alias: "proj", Path: dir}), mux, "")

	if err := svc.Go("proj"); err != nil {
		t.Fatalf("Go() error = %v", err)
	}
	if created {
		t.Error("Go() created a session although one already existed")
	}
	if attached != want {
		t.Errorf("Go() attached to %q, want %q", attached, want)
	}
}

func TestService_Go_CreatesAndAttaches(t *testing.T) {
	dir := t.TempDir()
	want := session.NameFor("mm-", dir)

	var createdName, createdDir, attached string
	mux := &testutil.MockMultiplexer{
		ListSessionsFunc: func() ([]string, error) { return nil, nil },
		CreateSessionFunc: func(name, workingDir string) error {
			createdName, createdDir = name, workingDir
			return nil
		},
		AttachSessionFunc: func(name string) error {
			if createdName == "" {
				t.Error("AttachSession called before CreateSession")
			}
			attached = name
			return nil
		},
	}
	svc := NewService(storeWith(bookmark.Bookmark{Alias: "proj", Path: dir}), mux, "mm-")

	if err := svc.Go("proj"); err != nil {
		t.Fatalf("Go() error = %v", err)
	}
	if createdName != want {
		t.Errorf("Go() created session %q, want %q", createdName, want)
	}
	if createdDir != dir {
		t.Errorf("Go() created session in %q, want %q", createdDir, dir)
	}
	if attached != want {
		t.Errorf("Go() attached to %q, want %q", attached, want)
	}
}

// Two consecutive Go calls for the same alias must target the identical
// session name, so the second call reattaches instead of duplicating.
func TestService_Go_Reattaches(t *testing.T) {
	dir := t.TempDir()

	var live []string
	var attach []string
	mux := &testutil.MockMultiplexer{
		ListSessionsFunc: func() ([]string, error) { return live, nil },
		CreateSessionFunc: func(name, workingDir string) error {
			live = append(live, name)
			return nil
		},
		AttachSessionFunc: func(name string) error {
			attach = append(attach, name)
			return nil
		},
	}
	svc := NewService(storeWith(bookmark.Bookmark{Alias: "proj", Path: dir}), mux, "")

	if err := svc.Go("proj"); err != nil {
		t.Fatalf("first Go() error = %v", err)
	}
	if err := svc.Go("proj"); err != nil {
		t.Fatalf("second Go() error = %v", err)
	}

	if len(live) != 1 {
		t.Errorf("Go() created %d sessions, want 1", len(live))
	}
	if len(attach) != 2 || attach[0] != attach[1] {
		t.Errorf("Go() attach targets = %v, want the same name twice", attach)
	}
}

func TestService_Go_MultiplexerErrors(t *testing.T) {
	dir := t.TempDir()
	muxErr := errors.New("tmux exploded")

	tests := []struct {
		name  string
		setup func(m *testutil.MockMultiplexer)
	}{
		{
			name: "list failure",
			setup: func(m *testutil.MockMultiplexer) {
				m.ListSessionsFunc = func() ([]string, error) { return nil, muxErr }
			},
		},
		{
			name: "create failure",
			setup: func(m *testutil.MockMultiplexer) {
				m.ListSessionsFunc = func() ([]string, error) { return nil, nil }
				m.CreateSessionFunc = func(string, string) error { return muxErr }
			},
		},
		{
			name: "attach failure",
			setup: func(m *testutil.MockMultiplexer) {
				m.ListSessionsFunc = func() ([]string, error) { return nil, nil }
				m.CreateSessionFunc = func(string, string) error { return nil }
				m.AttachSessionFunc = func(string) error { return muxErr }
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := &testutil.MockMultiplexer{}
			tt.setup(mux)
			svc := NewService(storeWith(bookmark.Bookmark{Alias: "proj", Path: dir}), mux, "")

			if err := svc.Go("proj"); !errors.Is(err, bookmark.ErrMultiplexer) {
				t.Errorf("Go() error = %v, want bookmark.ErrMultiplexer", err)
			}
		})
	}
}
