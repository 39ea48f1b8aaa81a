package session

import "context"

// Store persists session state between requests. Implementations return
// sentinel.ErrNotFound for unknown session ids; services translate that into
// the progression redirect to the funnel entry.
type Store interface {
	Save(ctx context.Context, state *State) error
	Find(ctx context.Context, sessionID string) (*State, error)
	Delete(ctx context.Context, sessionID string) error
}
