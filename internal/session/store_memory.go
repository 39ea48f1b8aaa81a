package session

import (
	"context"
	"encoding/json"
	"sync"

	"valuesprism/pkg/platform/sentinel"
)

// InMemoryStore keeps sessions in process memory. Suitable for a single
// instance; use the Redis store when running more than one replica.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// NewInMemoryStore creates an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string][]byte)}
}

// Save stores a deep copy of the state so later aggregate mutations don't
// leak into the stored snapshot.
func (s *InMemoryStore) Save(_ context.Context, state *State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.SessionID] = raw
	return nil
}

func (s *InMemoryStore) Find(_ context.Context, sessionID string) (*State, error) {
	s.mu.RLock()
	raw, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *InMemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
