package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"payoutd/internal/claim"
	"payoutd/internal/dispatch"
	"payoutd/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

type IntakeConfig struct {
	Sources      []string
	BatchSize    int
	BatchTimeout time.Duration
	WaitTimeout  time.Duration
	PendingTTL   time.Duration
}

// Intake accepts claims into the per-source queues and decides when a batch
// should run.
type Intake struct {
	logs      *zap.SugaredLogger
	queue     ClaimQueue
	ledger    Ledger
	trigger   BatchTrigger
	publisher Publisher
	waiters   *Waiters
	cfg       IntakeConfig
	sources   map[string]struct{}
	now       func() time.Time
	// lastStamp keeps enqueue times, and so claim ids, unique in the process
	lastStamp atomic.Int64

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
	wg     sync.WaitGroup
}

func NewIntake(logger *zap.SugaredLogger, queue ClaimQueue, ledger Ledger, trigger BatchTrigger, publisher Publisher, waiters *Waiters, cfg IntakeConfig) *Intake {
	sources := make(map[string]struct{}, len(cfg.Sources))
	for _, s := range cfg.Sources {
		sources[s] = struct{}{}
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}

	return &Intake{
		logs:      logger,
		queue:     queue,
		ledger:    ledger,
		trigger:   trigger,
		publisher: publisher,
		waiters:   waiters,
		cfg:       cfg,
		sources:   sources,
		now:       time.Now,
		timers:    make(map[string]*time.Timer),
	}
}

// Enqueue accepts a claim and waits for its outcome. When the outcome is not
// known in time it returns a processing result with ErrProcessingTimeout;
// the payout itself carries on.
func (i *Intake) Enqueue(ctx context.Context, msg ClaimMessage) (claim.PayoutResult, error) {
	c, res, err := i.prepare(ctx, msg)
	if err != nil {
		return res, err
	}

	done := i.waiters.add(c.ID)
	defer i.waiters.remove(c.ID)

	if err := i.push(ctx, c); err != nil {
		return claim.PayoutResult{ClaimID: c.ID, Status: claim.StatusFailed}, err
	}

	timeout := max(2*i.cfg.BatchTimeout, i.cfg.WaitTimeout)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-done:
		return res, resultError(res)
	case <-timer.C:
		i.logs.Infow("claim outcome not known in time",
			"claim_id", c.ID,
			"waited", timeout.String())
		return claim.PayoutResult{ClaimID: c.ID, Status: claim.StatusProcessing}, ErrProcessingTimeout
	case <-ctx.Done():
		return claim.PayoutResult{ClaimID: c.ID, Status: claim.StatusProcessing}, fmt.Errorf("%w: %w", ErrProcessingTimeout, ctx.Err())
	}
}

// Submit accepts a claim without waiting. The caller polls Status.
func (i *Intake) Submit(ctx context.Context, msg ClaimMessage) (claim.PayoutResult, error) {
	c, res, err := i.prepare(ctx, msg)
	if err != nil {
		return res, err
	}

	if err := i.push(ctx, c); err != nil {
		return claim.PayoutResult{ClaimID: c.ID, Status: claim.StatusFailed}, err
	}
	return claim.PayoutResult{ClaimID: c.ID, Status: claim.StatusProcessing}, nil
}

// Status reports the outcome of the pair from the ledger and the pending marker.
func (i *Intake) Status(ctx context.Context, userKey, eventID string) (claim.PayoutResult, error) {
	entry, err := i.ledger.Entry(ctx, userKey, eventID)
	found := err == nil
	if err != nil && !errors.Is(err, ledger.ErrNotFound) {
		return claim.PayoutResult{}, fmt.Errorf("get ledger entry: %w", err)
	}

	if found && entry.Success {
		res := claim.PayoutResult{ClaimID: entry.ClaimID, Status: claim.StatusSuccess}
		if entry.TxHash != nil {
			res.TxHash = *entry.TxHash
		}
		return res, nil
	}

	holder, pending, err := i.queue.PendingClaim(ctx, userKey, eventID)
	if err != nil {
		return claim.PayoutResult{}, fmt.Errorf("get pending claim: %w", err)
	}
	if pending {
		return claim.PayoutResult{ClaimID: holder, Status: claim.StatusProcessing}, nil
	}

	if found {
		return claim.PayoutResult{ClaimID: entry.ClaimID, Status: claim.StatusFailed, Reason: entry.Error}, nil
	}
	return claim.PayoutResult{Status: claim.StatusNotFound}, nil
}

// Close stops the in-process batch timers and waits for batches started by
// this instance.
func (i *Intake) Close() {
	i.mu.Lock()
	i.closed = true
	for source, t := range i.timers {
		t.Stop()
		delete(i.timers, source)
	}
	i.mu.Unlock()

	i.wg.Wait()
}

func (i *Intake) prepare(ctx context.Context, msg ClaimMessage) (claim.Claim, claim.PayoutResult, error) {
	var c claim.Claim

	if _, ok := i.sources[msg.Source]; !ok {
		return c, claim.PayoutResult{Status: claim.StatusFailed}, fmt.Errorf("%w: %q", ErrUnknownSource, msg.Source)
	}
	if !common.IsHexAddress(msg.RecipientAddress) || common.HexToAddress(msg.RecipientAddress) == (common.Address{}) {
		return c, claim.PayoutResult{Status: claim.StatusFailed}, fmt.Errorf("%w: %q", ErrInvalidAddress, msg.RecipientAddress)
	}

	claimed, err := i.ledger.IsClaimed(ctx, msg.UserKey, msg.EventID)
	if err != nil {
		return c, claim.PayoutResult{Status: claim.StatusFailed}, fmt.Errorf("check ledger: %w", err)
	}
	if claimed {
		return c, claim.PayoutResult{Status: claim.StatusAlreadyClaimed}, ErrAlreadyClaimed
	}

	now := i.stamp()
	c = claim.Claim{
		ID:               claim.NewID(msg.RecipientAddress, msg.EventID, now),
		UserKey:          msg.UserKey,
		RecipientAddress: msg.RecipientAddress,
		EventID:          msg.EventID,
		Source:           msg.Source,
		EnqueuedAt:       now,
		Metadata:         msg.Metadata,
	}

	ok, err := i.queue.MarkPending(ctx, c.UserKey, c.EventID, c.ID, i.cfg.PendingTTL)
	if err != nil {
		return c, claim.PayoutResult{Status: claim.StatusFailed}, fmt.Errorf("mark claim pending: %w", err)
	}
	if !ok {
		holder, _, _ := i.queue.PendingClaim(ctx, c.UserKey, c.EventID)
		return c, claim.PayoutResult{ClaimID: holder, Status: claim.StatusProcessing}, ErrClaimInProgress
	}

	return c, claim.PayoutResult{}, nil
}

func (i *Intake) stamp() time.Time {
	n := i.now().UnixNano()
	for {
		last := i.lastStamp.Load()
		next := max(n, last+1)
		if i.lastStamp.CompareAndSwap(last, next) {
			return time.Unix(0, next).UTC()
		}
	}
}

func (i *Intake) push(ctx context.Context, c claim.Claim) error {
	n, err := i.queue.Push(ctx, c)
	if err != nil {
		if clearErr := i.queue.ClearPending(ctx, c.UserKey, c.EventID); clearErr != nil {
			i.logs.Warnw("clear pending marker", "claim_id", c.ID, "error", clearErr)
		}
		return fmt.Errorf("enqueue claim: %w", err)
	}

	i.logs.Infow("claim queued",
		"claim_id", c.ID,
		"source", c.Source,
		"queue_length", n)

	if n >= int64(i.cfg.BatchSize) {
		i.fire(ctx, c.Source)
		return nil
	}
	i.armTimer(ctx, c.Source)
	return nil
}

// armTimer starts the batch timeout for source unless one is already running
// on any instance. The delayed job is the durable copy of the in-process timer.
func (i *Intake) armTimer(ctx context.Context, source string) {
	armed, err := i.queue.ArmTimer(ctx, source, i.cfg.BatchTimeout)
	if err != nil {
		i.logs.Warnw("arm batch timer", "source", source, "error", err)
		return
	}
	if !armed {
		return
	}

	if err := i.publisher.Publish(ctx, dispatch.NewBatchTrigger(source), i.cfg.BatchTimeout); err != nil {
		i.logs.Warnw("publish batch timer", "source", source, "error", err)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return
	}
	if t, ok := i.timers[source]; ok {
		t.Stop()
	}
	i.timers[source] = time.AfterFunc(i.cfg.BatchTimeout, func() {
		i.mu.Lock()
		delete(i.timers, source)
		i.mu.Unlock()
		i.fire(context.Background(), source)
	})
}

// fire runs the batch trigger detached from the caller's deadline.
func (i *Intake) fire(ctx context.Context, source string) {
	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return
	}
	i.wg.Add(1)
	i.mu.Unlock()

	go func() {
		defer i.wg.Done()
		if err := i.trigger.TriggerBatch(context.WithoutCancel(ctx), source); err != nil {
			i.logs.Errorw("batch trigger failed", "source", source, "error", err)
		}
	}()
}

func resultError(res claim.PayoutResult) error {
	switch res.Status {
	case claim.StatusSuccess:
		return nil
	case claim.StatusAlreadyClaimed:
		return ErrAlreadyClaimed
	case claim.StatusProcessing:
		return ErrRetryScheduled
	default:
		return fmt.Errorf("%w: %s", ErrPayoutFailed, res.Reason)
	}
}
