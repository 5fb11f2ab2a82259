package queue

import (
	"context"
	"time"
)

type Store interface {
	Push(ctx context.Context, key string, values ...[]byte) (int64, error)
	PushFront(ctx context.Context, key string, values ...[]byte) (int64, error)
	PopN(ctx context.Context, key string, n int64) ([][]byte, error)
	Len(ctx context.Context, key string) (int64, error)
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
}
