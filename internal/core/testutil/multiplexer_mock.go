package testutil

import "errors"

// MockMultiplexer is a mock implementation of ports.Multiplexer for testing.
type MockMultiplexer struct {
	ListSessionsFunc  func() ([]string, error)
	CreateSessionFunc func(name, workingDir string) error
	AttachSessionFunc func(name string) error
}

func (m *MockMultiplexer) ListSessions() ([]string, error) {
	if m.ListSessionsFunc != nil {
		return m.ListSessionsFunc()
	}
	return nil, errors.New("MockMultiplexer: ListSessionsFunc not implemented")
}

func (m *MockMultiplexer) CreateSession(name, workingDir string) error {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(name, workingDir)
	}
	return errors.New("MockMultiplexer: CreateSessionFunc not implemented")
}

func (m *MockMultiplexer) AttachSession(name string) error {
	if m.AttachSessionFunc != nil {
		return m.AttachSessionFunc(name)
	}
	return errors.New("MockMultiplexer: AttachSessionFunc not implemented")
}
