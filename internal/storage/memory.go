package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is an in-memory Store used by tests. Documents are held as raw JSON
// so load/save round-trips behave like the file-backed store.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte

	// SaveErr, when set, makes every Save fail with it.
	SaveErr error
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Load(ctx context.Context, name string, target any) error {
	m.mu.RLock()
	raw, ok := m.docs[name]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return nil
	}
	return nil
}

func (m *Memory) Save(ctx context.Context, name string, value any) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", name, err)
	}
	m.mu.Lock()
	m.docs[name] = b
	m.mu.Unlock()
	return nil
}

func (m *Memory) SeedIfAbsent(ctx context.Context, name string, value any) error {
	m.mu.RLock()
	_, ok := m.docs[name]
	m.mu.RUnlock()
	if ok {
		return nil
	}
	return m.Save(ctx, name, value)
}
