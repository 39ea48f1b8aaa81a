package bucket

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"valuesprism/internal/ratelimit/models"
)

const bucketKeyPrefix = "vp:ratelimit:"

// RedisBucketStore implements the sliding window on Redis sorted sets, scored
// by request time. Keys expire one window after their last write, so Redis
// handles sweeping natively and windows are shared across replicas.
type RedisBucketStore struct {
	client *redis.Client
}

// NewRedisBucketStore constructs a Redis-backed bucket store.
func NewRedisBucketStore(client *redis.Client) *RedisBucketStore {
	return &RedisBucketStore{client: client}
}

func (s *RedisBucketStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error) {
	now := time.Now()
	redisKey := bucketKeyPrefix + key
	cutoff := now.Add(-window)
	member := fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString())

	// Trim, record and count in one MULTI/EXEC so concurrent callers observe
	// an exact count. An over-limit entry is removed again below.
	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", formatScore(cutoff))
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: member,
	})
	rankCmd := pipe.ZRank(ctx, redisKey, member)
	oldestCmd := pipe.ZRangeWithScores(ctx, redisKey, 0, 0)
	pipe.Expire(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("rate limit window update: %w", err)
	}

	// Rank is the number of older requests in the window.
	if int(rankCmd.Val()) >= limit {
		if err := s.client.ZRem(ctx, redisKey, member).Err(); err != nil {
			return nil, fmt.Errorf("rate limit window trim: %w", err)
		}
		resetAt := now.Add(window)
		if oldest := oldestCmd.Val(); len(oldest) > 0 {
			resetAt = scoreToTime(oldest[0].Score).Add(window)
		}
		return &models.RateLimitResult{
			Allowed:    false,
			Limit:      limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfterSeconds(now, resetAt),
		}, nil
	}

	remaining := limit - int(rankCmd.Val()) - 1
	if remaining < 0 {
		remaining = 0
	}
	return &models.RateLimitResult{
		Allowed:   true,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   now.Add(window),
	}, nil
}

func (s *RedisBucketStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, bucketKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("rate limit reset: %w", err)
	}
	return nil
}

func formatScore(t time.Time) string {
	return strconv.FormatInt(t.UnixNano(), 10)
}

func scoreToTime(score float64) time.Time {
	return time.Unix(0, int64(math.Round(score)))
}
