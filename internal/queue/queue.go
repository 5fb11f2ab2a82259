package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payoutd/internal/claim"
	"payoutd/internal/kv"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

func QueueKey(source string) string {
	return "claims:queue:" + source
}

func TimerKey(source string) string {
	return "claims:timer:" + source
}

func PendingKey(userKey, eventID string) string {
	return "claims:pending:" + claim.PairKey(userKey, eventID)
}

// ClaimQueue keeps one FIFO list of claims per source plus the batch timer
// and pending-claim markers.
type ClaimQueue struct {
	logs  *zap.SugaredLogger
	store Store
}

func NewClaimQueue(logger *zap.SugaredLogger, store Store) *ClaimQueue {
	return &ClaimQueue{
		logs:  logger,
		store: store,
	}
}

// Push appends the claim and returns the queue length after the append.
func (q *ClaimQueue) Push(ctx context.Context, c claim.Claim) (int64, error) {
	b, err := msgpack.Marshal(c)
	if err != nil {
		return 0, fmt.Errorf("encode claim: %w", err)
	}

	n, err := q.store.Push(ctx, QueueKey(c.Source), b)
	if err != nil {
		return 0, fmt.Errorf("push claim: %w", err)
	}
	return n, nil
}

// PushFront returns claims to the head of the source queue.
func (q *ClaimQueue) PushFront(ctx context.Context, source string, claims []claim.Claim) error {
	values := make([][]byte, 0, len(claims))
	for _, c := range claims {
		b, err := msgpack.Marshal(c)
		if err != nil {
			return fmt.Errorf("encode claim %s: %w", c.ID, err)
		}
		values = append(values, b)
	}

	if _, err := q.store.PushFront(ctx, QueueKey(source), values...); err != nil {
		return fmt.Errorf("requeue claims: %w", err)
	}
	return nil
}

// Pop removes up to n claims from the head. Entries that cannot be decoded
// are logged and dropped.
func (q *ClaimQueue) Pop(ctx context.Context, source string, n int) ([]claim.Claim, error) {
	values, err := q.store.PopN(ctx, QueueKey(source), int64(n))
	if err != nil {
		return nil, fmt.Errorf("pop claims: %w", err)
	}

	claims := make([]claim.Claim, 0, len(values))
	for _, v := range values {
		var c claim.Claim
		if err := msgpack.Unmarshal(v, &c); err != nil {
			q.logs.Errorw("dropping undecodable queue entry",
				"source", source,
				"raw", string(v),
				"error", err)
			continue
		}
		claims = append(claims, c)
	}
	return claims, nil
}

func (q *ClaimQueue) Len(ctx context.Context, source string) (int64, error) {
	return q.store.Len(ctx, QueueKey(source))
}

// ArmTimer reports whether this call armed the batch timer for source.
func (q *ClaimQueue) ArmTimer(ctx context.Context, source string, ttl time.Duration) (bool, error) {
	return q.store.SetNX(ctx, TimerKey(source), time.Now().UTC().Format(time.RFC3339Nano), ttl)
}

func (q *ClaimQueue) ClearTimer(ctx context.Context, source string) error {
	return q.store.Delete(ctx, TimerKey(source))
}

// MarkPending reserves (userKey, eventID) for claimID. It reports false when
// any claim, including claimID itself, already holds the pair.
func (q *ClaimQueue) MarkPending(ctx context.Context, userKey, eventID, claimID string, ttl time.Duration) (bool, error) {
	return q.store.SetNX(ctx, PendingKey(userKey, eventID), claimID, ttl)
}

// PendingClaim returns the claim id holding the pending marker, if any.
func (q *ClaimQueue) PendingClaim(ctx context.Context, userKey, eventID string) (string, bool, error) {
	id, err := q.store.Get(ctx, PendingKey(userKey, eventID))
	if errors.Is(err, kv.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

func (q *ClaimQueue) ClearPending(ctx context.Context, userKey, eventID string) error {
	return q.store.Delete(ctx, PendingKey(userKey, eventID))
}
