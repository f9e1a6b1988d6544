package session

import (
	"context"
	"encoding/json"
	"sync"
)

// InMemoryStore is the default Store implementation. The identity is held
// in its serialized form so that load semantics match the Redis store
// exactly (malformed JSON reads back as absent).
type InMemoryStore struct {
	mu       sync.RWMutex
	token    string
	identity []byte
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Save(_ context.Context, credential string, identity Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = credential
	s.identity = raw
	return nil
}

func (s *InMemoryStore) Load(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *InMemoryStore) LoadIdentity(_ context.Context) (Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.identity) == 0 {
		return Identity{}, nil
	}

	var identity Identity
	if err := json.Unmarshal(s.identity, &identity); err != nil {
		// Malformed identity JSON is treated as absent.
		return Identity{}, nil
	}
	return identity, nil
}

func (s *InMemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.identity = nil
	return nil
}
