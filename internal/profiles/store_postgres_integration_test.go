//go:build integration

package profiles_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"valuesprism/internal/profiles"
	"valuesprism/internal/session"
	"valuesprism/pkg/platform/sentinel"
	"valuesprism/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *profiles.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = profiles.NewPostgresStore(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "value_profiles"))
}

func testProfile(slug, sessionID string) *profiles.Profile {
	return &profiles.Profile{
		Slug:      slug,
		SessionID: sessionID,
		RankedValues: []profiles.ProfileValue{
			{
				ValueID:    "courage",
				Name:       "Courage",
				DomainName: "Courage & Action",
				Rank:       1,
				Definition: session.Definition{
					Tagline:           "Forward through fear",
					Definition:        "Courage shapes how you act under pressure.",
					BehavioralAnchors: []string{"When afraid, ask: What would I do if I trusted myself?"},
				},
			},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	profile := testProfile("slug-1", "session-1")
	s.Require().NoError(s.store.Save(ctx, profile))

	bySlug, err := s.store.FindBySlug(ctx, "slug-1")
	s.Require().NoError(err)
	s.Equal(profile.SessionID, bySlug.SessionID)
	s.Require().Len(bySlug.RankedValues, 1)
	s.Equal("Forward through fear", bySlug.RankedValues[0].Definition.Tagline)
	s.Equal(profile.CreatedAt, bySlug.CreatedAt)

	bySession, err := s.store.FindBySession(ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(profile.Slug, bySession.Slug)
}

func (s *PostgresStoreSuite) TestNotFound() {
	ctx := context.Background()

	_, err := s.store.FindBySlug(ctx, "missing")
	s.True(errors.Is(err, sentinel.ErrNotFound))

	_, err = s.store.FindBySession(ctx, "missing")
	s.True(errors.Is(err, sentinel.ErrNotFound))
}

func (s *PostgresStoreSuite) TestUpsertPerSession() {
	ctx := context.Background()
	s.Require().NoError(s.store.Save(ctx, testProfile("slug-1", "session-1")))

	updated := testProfile("slug-1", "session-1")
	updated.RankedValues[0].Definition.Tagline = "Updated tagline"
	s.Require().NoError(s.store.Save(ctx, updated))

	loaded, err := s.store.FindBySession(ctx, "session-1")
	s.Require().NoError(err)
	s.Equal("Updated tagline", loaded.RankedValues[0].Definition.Tagline)
}
