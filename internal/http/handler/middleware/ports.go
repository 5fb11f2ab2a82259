package middleware

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Limiter . Limiter
type Limiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) error
}
