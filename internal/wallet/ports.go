package wallet

import (
	"context"
	"time"

	"payoutd/internal/kv"
)

type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (kv.Lock, error)
}
