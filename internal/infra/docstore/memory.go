package docstore

import (
	"context"
	"slices"
	"sync"
)

type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

func (m *MemoryBackend) Name() string { return "memory" }

func (m *MemoryBackend) Read(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.docs[name]
	if !ok {
		return nil, ErrDocumentMissing
	}
	return slices.Clone(data), nil
}

func (m *MemoryBackend) Write(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[name] = slices.Clone(data)
	return nil
}
