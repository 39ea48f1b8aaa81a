// Package service coordinates session persistence with the aggregate's
// invariants: every mutation loads the state, applies one aggregate method
// and saves the result.
package service

import (
	"context"
	"errors"
	"log/slog"

	"valuesprism/internal/progression"
	"valuesprism/internal/session"
	dErrors "valuesprism/pkg/domain-errors"
	"valuesprism/pkg/platform/audit"
	"valuesprism/pkg/platform/audit/publisher"
	"valuesprism/pkg/platform/sentinel"
)

// Service owns session lifecycle and stage-gated mutations.
type Service struct {
	store  session.Store
	logger *slog.Logger
	audit  *publisher.Publisher
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAudit(pub *publisher.Publisher) Option {
	return func(s *Service) { s.audit = pub }
}

func New(store session.Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	svc := &Service{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Create starts a fresh attempt and persists it.
func (s *Service) Create(ctx context.Context) (*session.State, error) {
	state := session.New()
	if err := s.store.Save(ctx, state); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save session")
	}
	s.logger.InfoContext(ctx, "session created", "session_id", state.SessionID)
	s.emit(ctx, state.SessionID, audit.EventSessionCreated)
	return state, nil
}

// Get loads a session by id.
func (s *Service) Get(ctx context.Context, sessionID string) (*session.State, error) {
	state, err := s.store.Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "session not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}
	return state, nil
}

// mutate loads, applies one aggregate mutation and saves. The mutation's
// typed error passes through untouched so handlers can map it.
func (s *Service) mutate(ctx context.Context, sessionID string, fn func(*session.State) error) (*session.State, error) {
	state, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(state); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, state); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save session")
	}
	return state, nil
}

// AdvanceSort assigns the card under the cursor to a tier.
func (s *Service) AdvanceSort(ctx context.Context, sessionID string, tier session.Tier) (*session.State, error) {
	return s.mutate(ctx, sessionID, func(st *session.State) error {
		return st.AdvanceSort(tier)
	})
}

// Narrow records the 3-5 value narrowed set.
func (s *Service) Narrow(ctx context.Context, sessionID string, ids []string) (*session.State, error) {
	return s.mutate(ctx, sessionID, func(st *session.State) error {
		return st.SetNarrowed(ids)
	})
}

// Rank records the full ranking of the narrowed set.
func (s *Service) Rank(ctx context.Context, sessionID string, order []string) (*session.State, error) {
	return s.mutate(ctx, sessionID, func(st *session.State) error {
		return st.SetRankedOrder(order)
	})
}

// SetTranscript stores the voice transcript verbatim.
func (s *Service) SetTranscript(ctx context.Context, sessionID, text string) (*session.State, error) {
	return s.mutate(ctx, sessionID, func(st *session.State) error {
		st.SetTranscript(text)
		return nil
	})
}

// SaveDefinitions replaces the definition set for the top ranked values.
func (s *Service) SaveDefinitions(ctx context.Context, sessionID string, defs map[string]session.Definition) (*session.State, error) {
	return s.mutate(ctx, sessionID, func(st *session.State) error {
		st.SetDefinitions(defs)
		return nil
	})
}

// UpdateDefinition applies a user edit to one definition.
func (s *Service) UpdateDefinition(ctx context.Context, sessionID, valueID, tagline, definition string, anchors []string) (*session.State, error) {
	return s.mutate(ctx, sessionID, func(st *session.State) error {
		return st.UpdateDefinition(valueID, tagline, definition, anchors)
	})
}

// SetShareSlug pins the published share slug on the session. Conflicting
// re-publication is rejected by the aggregate.
func (s *Service) SetShareSlug(ctx context.Context, sessionID, slug string) (*session.State, error) {
	return s.mutate(ctx, sessionID, func(st *session.State) error {
		return st.SetShareSlug(slug)
	})
}

// SetConsent records the sharing consent flag.
func (s *Service) SetConsent(ctx context.Context, sessionID string, consent bool) (*session.State, error) {
	state, err := s.mutate(ctx, sessionID, func(st *session.State) error {
		st.SetConsent(consent)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if consent {
		s.emit(ctx, sessionID, audit.EventConsentGranted)
	} else {
		s.emit(ctx, sessionID, audit.EventConsentRevoked)
	}
	return state, nil
}

func (s *Service) emit(ctx context.Context, sessionID string, action audit.AuditEvent) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Emit(ctx, audit.Event{
		SessionID: sessionID,
		Action:    string(action),
	})
}

// Reset abandons the attempt and starts over. The reset state carries a new
// session id, so the old record is deleted and the new one saved.
func (s *Service) Reset(ctx context.Context, sessionID string) (*session.State, error) {
	state, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, sessionID); err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete session")
	}
	state.Reset()
	if err := s.store.Save(ctx, state); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save session")
	}
	s.logger.InfoContext(ctx, "session reset", "session_id", state.SessionID)
	s.emit(ctx, sessionID, audit.EventSessionReset)
	return state, nil
}

// Stage evaluates whether the session may enter the requested stage. A
// missing session is not an error here: the decision redirects to the funnel
// entry.
func (s *Service) Stage(ctx context.Context, sessionID string, requested progression.Stage) (progression.Decision, error) {
	state, err := s.store.Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return progression.Check(nil, requested), nil
		}
		return progression.Decision{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}
	return progression.Check(state, requested), nil
}

// ResumeStage reports the furthest stage the session has earned.
func (s *Service) ResumeStage(ctx context.Context, sessionID string) (progression.Stage, error) {
	state, err := s.store.Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return progression.Resume(nil), nil
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to load session")
	}
	return progression.Resume(state), nil
}
