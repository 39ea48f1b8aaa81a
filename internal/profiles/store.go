package profiles

import "context"

// Store persists published profiles. Implementations return
// sentinel.ErrNotFound for unknown slugs and sessions.
type Store interface {
	Save(ctx context.Context, profile *Profile) error
	FindBySlug(ctx context.Context, slug string) (*Profile, error)
	FindBySession(ctx context.Context, sessionID string) (*Profile, error)
}
