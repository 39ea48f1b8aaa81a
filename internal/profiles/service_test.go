package profiles

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"valuesprism/internal/session"
	dErrors "valuesprism/pkg/domain-errors"
	"valuesprism/pkg/platform/audit"
	"valuesprism/pkg/platform/audit/publisher"
	"valuesprism/pkg/platform/audit/store/memory"
)

type ServiceSuite struct {
	suite.Suite
	svc    *Service
	events *memory.InMemoryStore
	ctx    context.Context
}

func (s *ServiceSuite) SetupTest() {
	s.events = memory.NewInMemoryStore()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc, err := New(NewInMemoryStore(),
		WithLogger(logger),
		WithAudit(publisher.NewPublisher(s.events)),
	)
	require.NoError(s.T(), err)
	s.svc = svc
	s.ctx = context.Background()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

// completedState builds a session that has earned the share stage.
func completedState() *session.State {
	return &session.State{
		SessionID:   "s-1",
		RankedOrder: []string{"courage", "integrity", "honesty"},
		Definitions: map[string]session.Definition{
			"courage":   {Tagline: "Forward through fear"},
			"integrity": {Tagline: "Truth in action"},
			"honesty":   {Tagline: "Words that match"},
		},
		Consent: true,
	}
}

func (s *ServiceSuite) TestPublish() {
	profile, err := s.svc.Publish(s.ctx, completedState())
	require.NoError(s.T(), err)
	s.NotEmpty(profile.Slug)
	s.Equal("s-1", profile.SessionID)
	s.False(profile.CreatedAt.IsZero())

	require.Len(s.T(), profile.RankedValues, 3)
	s.Equal("courage", profile.RankedValues[0].ValueID)
	s.Equal("Courage", profile.RankedValues[0].Name)
	s.Equal("Courage & Action", profile.RankedValues[0].DomainName)
	s.Equal(1, profile.RankedValues[0].Rank)
	s.Equal("Forward through fear", profile.RankedValues[0].Definition.Tagline)
	s.Equal(3, profile.RankedValues[2].Rank)

	events, err := s.events.ListBySession(s.ctx, "s-1")
	require.NoError(s.T(), err)
	require.Len(s.T(), events, 1)
	s.Equal(string(audit.EventProfilePublished), events[0].Action)
}

func (s *ServiceSuite) TestPublishIdempotentPerSession() {
	first, err := s.svc.Publish(s.ctx, completedState())
	require.NoError(s.T(), err)

	second, err := s.svc.Publish(s.ctx, completedState())
	require.NoError(s.T(), err)
	s.Equal(first.Slug, second.Slug)

	// No second audit event for the no-op republication.
	events, err := s.events.ListBySession(s.ctx, "s-1")
	require.NoError(s.T(), err)
	s.Len(events, 1)
}

func (s *ServiceSuite) TestPublishRequiresConsent() {
	state := completedState()
	state.Consent = false

	_, err := s.svc.Publish(s.ctx, state)
	require.Error(s.T(), err)
	s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestPublishRequiresRanking() {
	state := completedState()
	state.RankedOrder = nil

	_, err := s.svc.Publish(s.ctx, state)
	s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestPublishRequiresDefinitions() {
	state := completedState()
	state.Definitions = nil

	_, err := s.svc.Publish(s.ctx, state)
	s.True(dErrors.Is(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestGet() {
	published, err := s.svc.Publish(s.ctx, completedState())
	require.NoError(s.T(), err)

	loaded, err := s.svc.Get(s.ctx, published.Slug)
	require.NoError(s.T(), err)
	s.Equal(published.SessionID, loaded.SessionID)
	s.Len(loaded.RankedValues, 3)

	_, err = s.svc.Get(s.ctx, "missing")
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

// TestSnapshotImmutable verifies later session edits do not leak into the
// published profile.
func (s *ServiceSuite) TestSnapshotImmutable() {
	state := completedState()
	published, err := s.svc.Publish(s.ctx, state)
	require.NoError(s.T(), err)

	def := state.Definitions["courage"]
	def.Tagline = "Edited later"
	state.Definitions["courage"] = def

	loaded, err := s.svc.Get(s.ctx, published.Slug)
	require.NoError(s.T(), err)
	s.Equal("Forward through fear", loaded.RankedValues[0].Definition.Tagline)
}
