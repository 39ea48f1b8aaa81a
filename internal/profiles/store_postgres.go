package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"valuesprism/pkg/platform/sentinel"
)

// PostgresStore persists published profiles in PostgreSQL. The snapshot is
// stored as a JSONB payload; slug and session id are first-class columns for
// lookup.
//
// Schema:
//
//	CREATE TABLE value_profiles (
//	    slug       TEXT PRIMARY KEY,
//	    session_id TEXT NOT NULL UNIQUE,
//	    payload    JSONB NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed profile store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, profile *Profile) error {
	if profile == nil {
		return fmt.Errorf("profile is required")
	}
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	query := `
		INSERT INTO value_profiles (slug, session_id, payload, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id) DO UPDATE SET
			payload = EXCLUDED.payload
	`
	_, err = s.db.ExecContext(ctx, query, profile.Slug, profile.SessionID, payload, profile.CreatedAt)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindBySlug(ctx context.Context, slug string) (*Profile, error) {
	return s.findBy(ctx, `SELECT payload FROM value_profiles WHERE slug = $1`, slug)
}

func (s *PostgresStore) FindBySession(ctx context.Context, sessionID string) (*Profile, error) {
	return s.findBy(ctx, `SELECT payload FROM value_profiles WHERE session_id = $1`, sessionID)
}

func (s *PostgresStore) findBy(ctx context.Context, query, arg string) (*Profile, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	var profile Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}
