package ledger

import (
	"context"
	"errors"
	"time"

	"payoutd/internal/claim"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
)

const (
	localPairs = 10000
	localTTL   = time.Minute
)

// PaidCache remembers pairs known to be paid, with the hash that paid them.
// Unpaid pairs are never stored, so a miss always falls through to the
// database.
type PaidCache struct {
	instance *cache.Cache
	ttl      time.Duration
}

// NewPaidCache keeps entries in redis for ttl and, when withLocal is set, in
// a small in-process LFU as well.
func NewPaidCache(client redis.UniversalClient, ttl time.Duration, withLocal bool) *PaidCache {
	var local cache.LocalCache
	if withLocal {
		local = cache.NewTinyLFU(localPairs, localTTL)
	}
	return &PaidCache{
		instance: cache.New(&cache.Options{
			Redis:      client,
			LocalCache: local,
		}),
		ttl: ttl,
	}
}

func paidKey(userKey, eventID string) string {
	return "ledger:paid:" + claim.PairKey(userKey, eventID)
}

// Paid returns the payout hash of a pair known to be paid.
func (c *PaidCache) Paid(ctx context.Context, userKey, eventID string) (string, bool, error) {
	var txHash string
	err := c.instance.Get(ctx, paidKey(userKey, eventID), &txHash)
	if errors.Is(err, cache.ErrCacheMiss) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return txHash, true, nil
}

func (c *PaidCache) Remember(ctx context.Context, userKey, eventID, txHash string) error {
	return c.instance.Set(&cache.Item{
		Ctx:   ctx,
		Key:   paidKey(userKey, eventID),
		Value: txHash,
		TTL:   c.ttl,
	})
}
