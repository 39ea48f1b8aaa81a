package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuesprism/internal/ratelimit/models"
	"valuesprism/internal/ratelimit/store/bucket"
)

func newService(t *testing.T, limit int, opts ...Option) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	opts = append([]Option{WithLogger(logger)}, opts...)
	svc, err := New(bucket.NewInMemoryBucketStore(), limit, time.Minute, opts...)
	require.NoError(t, err)
	return svc
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, 10, time.Minute)
	assert.Error(t, err)
	_, err = New(bucket.NewInMemoryBucketStore(), 0, time.Minute)
	assert.Error(t, err)
	_, err = New(bucket.NewInMemoryBucketStore(), 10, 0)
	assert.Error(t, err)
}

func TestCheck_AdmitsUnderCeiling(t *testing.T) {
	svc := newService(t, 3)
	ctx := context.Background()

	for i := range 3 {
		result := svc.Check(ctx, "1.2.3.4")
		assert.True(t, result.Allowed)
		assert.Equal(t, 3-i-1, result.Remaining)
	}
}

func TestCheck_DeniesOverCeiling(t *testing.T) {
	svc := newService(t, 3)
	ctx := context.Background()

	for range 3 {
		require.True(t, svc.Check(ctx, "1.2.3.4").Allowed)
	}

	result := svc.Check(ctx, "1.2.3.4")
	assert.False(t, result.Allowed)
	assert.Positive(t, result.RetryAfter)

	// Other callers are unaffected.
	assert.True(t, svc.Check(ctx, "5.6.7.8").Allowed)
}

func TestCheck_Disabled(t *testing.T) {
	svc := newService(t, 1, WithDisabled(true))
	ctx := context.Background()
	for range 10 {
		assert.True(t, svc.Check(ctx, "1.2.3.4").Allowed)
	}
}

type failingStore struct{}

func (failingStore) Allow(context.Context, string, int, time.Duration) (*models.RateLimitResult, error) {
	return nil, errors.New("backend down")
}
func (failingStore) Reset(context.Context, string) error { return nil }

func TestCheck_FailsOpenOnStoreError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	svc, err := New(failingStore{}, 3, time.Minute, WithLogger(logger))
	require.NoError(t, err)

	result := svc.Check(context.Background(), "1.2.3.4")
	assert.True(t, result.Allowed)
}
