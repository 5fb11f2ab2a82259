package limiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

var ErrRateLimited = errors.New("rate limit exceeded")

// LimitError carries how long the caller should wait before retrying.
type LimitError struct {
	RetryAfter time.Duration
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: retry after %s", ErrRateLimited, e.RetryAfter)
}

func (e *LimitError) Unwrap() error {
	return ErrRateLimited
}

type RedisLimiter struct {
	limiter *redis_rate.Limiter
	prefix  string
}

func NewRedisLimiter(client redis.UniversalClient, prefix string) *RedisLimiter {
	return &RedisLimiter{
		limiter: redis_rate.NewLimiter(client),
		prefix:  prefix,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) error {
	res, err := l.limiter.Allow(ctx, l.prefix+key, limit)
	if err != nil {
		return fmt.Errorf("rate limiter allow: %w", err)
	}
	if res.Allowed == 0 {
		return &LimitError{RetryAfter: res.RetryAfter}
	}
	return nil
}
