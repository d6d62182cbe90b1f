package testutil

import (
	"errors"

	"github.com/AntonioJCosta/muxmark/internal/core/domain/bookmark"
)

// MockBookmarkStore is a mock implementation of ports.BookmarkStore for testing.
type MockBookmarkStore struct {
	AddFunc    func(b bookmark.Bookmark) error
	RemoveFunc func(alias string) error
	GetFunc    func(alias string) (bookmark.Bookmark, error)
	ListFunc   func() ([]bookmark.Bookmark, error)
}

func (m *MockBookmarkStore) Add(b bookmark.Bookmark) error {
	if m.AddFunc != nil {
		return m.AddFunc(b)
	}
	return errors.New("MockBookmarkStore: AddFunc not implemented")
}

func (m *MockBookmarkStore) Remove(alias string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(alias)
	}
	return errors.New("MockBookmarkStore: RemoveFunc not implemented")
}

func (m *MockBookmarkStore) Get(alias string) (bookmark.Bookmark, error) {
	if m.GetFunc != nil {
		return m.GetFunc(alias)
	}
	return bookmark.Bookmark{}, errors.New("MockBookmarkStore: GetFunc not implemented")
}

func (m *MockBookmarkStore) List() ([]bookmark.Bookmark, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, errors.New("MockBookmarkStore: ListFunc not implemented")
}
