package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps snapshots in memory. Used by tests and as a
// throwaway backend when no data directory is configured.
type MemoryStore struct {
	mu        sync.Mutex
	snapshots map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

func (s *MemoryStore) Save(ctx context.Context, collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[collection] = data
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, collection string, out any) error {
	s.mu.Lock()
	data, ok := s.snapshots[collection]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return nil
	}
	return nil
}
