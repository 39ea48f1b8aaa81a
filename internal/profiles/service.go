// Package profiles publishes immutable snapshots of completed attempts under
// a share slug.
package profiles

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"valuesprism/internal/catalog"
	"valuesprism/internal/session"
	dErrors "valuesprism/pkg/domain-errors"
	"valuesprism/pkg/platform/audit"
	"valuesprism/pkg/platform/audit/publisher"
	"valuesprism/pkg/platform/sentinel"
)

// Service publishes and serves shared profiles.
type Service struct {
	store  Store
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

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("profile store is required")
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

// Publish snapshots the attempt's top ranked values and their definitions
// under a fresh slug. Publishing twice for the same session returns the
// existing profile unchanged. Sharing requires recorded consent, a completed
// ranking and generated definitions.
func (s *Service) Publish(ctx context.Context, state *session.State) (*Profile, error) {
	if state == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "session state is required")
	}
	if !state.Consent {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "sharing consent not granted")
	}
	if len(state.RankedOrder) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "ranking not complete")
	}
	if len(state.Definitions) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "definitions not generated")
	}

	existing, err := s.store.FindBySession(ctx, state.SessionID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}

	profile := &Profile{
		Slug:      uuid.NewString(),
		SessionID: state.SessionID,
		CreatedAt: time.Now().UTC(),
	}
	for i, id := range state.TopRanked(session.DefinedTop) {
		item, ok := catalog.ValueByID(id)
		if !ok {
			continue
		}
		domainName := ""
		if d, ok := catalog.DomainForValue(id); ok {
			domainName = d.Name
		}
		profile.RankedValues = append(profile.RankedValues, ProfileValue{
			ValueID:    id,
			Name:       item.Name,
			DomainName: domainName,
			Rank:       i + 1,
			Definition: state.Definitions[id],
		})
	}

	if err := s.store.Save(ctx, profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile")
	}

	s.logger.InfoContext(ctx, "profile published",
		"session_id", state.SessionID,
		"slug", profile.Slug,
	)
	if s.audit != nil {
		_ = s.audit.Emit(ctx, audit.Event{
			SessionID: state.SessionID,
			Action:    string(audit.EventProfilePublished),
			Detail:    profile.Slug,
		})
	}
	return profile, nil
}

// Get loads a published profile by slug.
func (s *Service) Get(ctx context.Context, slug string) (*Profile, error) {
	profile, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "profile not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}
	return profile, nil
}
