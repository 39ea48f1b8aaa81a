package profiles

import (
	"context"
	"encoding/json"
	"sync"

	"valuesprism/pkg/platform/sentinel"
)

// InMemoryStore keeps profiles as JSON snapshots so callers cannot mutate
// stored state through shared slices.
type InMemoryStore struct {
	mu        sync.RWMutex
	bySlug    map[string][]byte
	bySession map[string]string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		bySlug:    make(map[string][]byte),
		bySession: make(map[string]string),
	}
}

func (s *InMemoryStore) Save(_ context.Context, profile *Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bySlug[profile.Slug] = data
	s.bySession[profile.SessionID] = profile.Slug
	return nil
}

func (s *InMemoryStore) FindBySlug(_ context.Context, slug string) (*Profile, error) {
	s.mu.RLock()
	data, ok := s.bySlug[slug]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *InMemoryStore) FindBySession(ctx context.Context, sessionID string) (*Profile, error) {
	s.mu.RLock()
	slug, ok := s.bySession[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return s.FindBySlug(ctx, slug)
}
