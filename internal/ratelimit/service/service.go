// Package service applies the configured admission ceiling and window on top
// of a bucket store. The synthesis service consults this facade before any
// model call is attempted.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"valuesprism/internal/ratelimit/metrics"
	"valuesprism/internal/ratelimit/models"
)

// BucketStore is the sliding-window counter the service delegates to.
type BucketStore interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error)
	Reset(ctx context.Context, key string) error
}

// Service checks admission for a caller identity.
type Service struct {
	store    BucketStore
	limit    int
	window   time.Duration
	disabled bool
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithDisabled turns every check into an unconditional admit (testing/demo).
func WithDisabled(disabled bool) Option {
	return func(s *Service) { s.disabled = disabled }
}

func New(store BucketStore, limit int, window time.Duration, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("bucket store is required")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive")
	}

	svc := &Service{
		store:  store,
		limit:  limit,
		window: window,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Check admits or denies one request for the given caller key. A store error
// fails open: the caller is admitted so an unhealthy limiter backend cannot
// take the synthesis path down with it.
func (s *Service) Check(ctx context.Context, key string) *models.RateLimitResult {
	if s.disabled {
		return &models.RateLimitResult{Allowed: true, Limit: s.limit, Remaining: s.limit}
	}
	if s.metrics != nil {
		s.metrics.IncrementChecks()
	}

	result, err := s.store.Allow(ctx, key, s.limit, s.window)
	if err != nil {
		s.logger.Error("rate limit check failed, admitting", "key", key, "error", err)
		return &models.RateLimitResult{Allowed: true, Limit: s.limit, Remaining: 0}
	}

	if !result.Allowed {
		if s.metrics != nil {
			s.metrics.IncrementDenied()
		}
		s.logger.Info("rate limit exceeded",
			"key", key,
			"limit", result.Limit,
			"retry_after_s", result.RetryAfter,
		)
	}
	return result
}
