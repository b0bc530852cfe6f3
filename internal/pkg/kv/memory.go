package kv

import (
	"context"
	"sync"
)

// Memory is a map-backed Store for tests and ephemeral runs. Contents are
// lost on process exit.
type Memory struct {
	mu       sync.RWMutex
	data     map[string]string
	maxValue int
}

// NewMemory creates an in-memory store. maxValueBytes <= 0 uses
// DefaultMaxValueBytes.
func NewMemory(maxValueBytes int) *Memory {
	if maxValueBytes <= 0 {
		maxValueBytes = DefaultMaxValueBytes
	}
	return &Memory{data: make(map[string]string), maxValue: maxValueBytes}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	if len(value) > m.maxValue {
		return ErrQuotaExceeded
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Close() error { return nil }
