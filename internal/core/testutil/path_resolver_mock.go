package testutil

import "errors"

// MockPathResolver is a mock implementation of ports.PathResolver for testing.
type MockPathResolver struct {
	ResolveFunc func(rawPath string) (string, error)
}

func (m *MockPathResolver) Resolve(rawPath string) (string, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(rawPath)
	}
	return "", errors.New("MockPathResolver: ResolveFunc not implemented")
}
