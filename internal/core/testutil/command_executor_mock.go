package testutil

import "errors"

// MockCommandExecutor is a mock implementation of ports.CommandExecutor for testing.
type MockCommandExecutor struct {
	ExecuteFunc            func(name string, args ...string) (string, string, error)
	ExecuteInteractiveFunc func(name string, args ...string) error
}

func (m *MockCommandExecutor) Execute(name string, args ...string) (string, string, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return "", "", errors.New("MockCommandExecutor: ExecuteFunc not implemented")
}

func (m *MockCommandExecutor) ExecuteInteractive(name string, args ...string) error {
	if m.ExecuteInteractiveFunc != nil {
		return m.ExecuteInteractiveFunc(name, args...)
	}
	return errors.New("MockCommandExecutor: ExecuteInteractiveFunc not implemented")
}
