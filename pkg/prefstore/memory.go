package prefstore

import (
	"context"
	"sync"
)

// Memory is an in-process preference store. Useful for desktop/CLI
// sessions and tests.
type Memory struct {
	mu   sync.RWMutex
	code string
	set  bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the stored code or ErrNotFound.
func (m *Memory) Read(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.set {
		return "", ErrNotFound
	}
	return m.code, nil
}

// Write stores the code.
func (m *Memory) Write(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.code = code
	m.set = true
	return nil
}

// Clear removes the stored code.
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.code = ""
	m.set = false
	return nil
}

var _ Store = (*Memory)(nil)
