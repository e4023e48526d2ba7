package services

import (
	"context"
	"encoding/json"
	"sync"
)

// KVStore is the flat key-value contract every piece of state goes through:
// a durable mapping from string keys to JSON documents. No transactions, no
// indexing. Absence is reported via the bool, not an error.
type KVStore interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// MemoryStore is an in-process KVStore, used by tests and by the
// STORAGE_BACKEND=memory mode for local runs.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make(json.RawMessage, len(doc))
	copy(out, doc)
	return out, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value interface{}) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = doc
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]json.RawMessage)
	return nil
}
