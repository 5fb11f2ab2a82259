package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"payoutd/internal/claim"
	"payoutd/internal/dispatch"
	"payoutd/internal/executor"
	"payoutd/internal/kv"
	"payoutd/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

type TriggerConfig struct {
	BatchSize    int
	BatchTimeout time.Duration
	LockTTL      time.Duration
	// RefillThreshold is the allowance under which an approval job is queued.
	RefillThreshold *big.Int
}

// Trigger turns queued claims into batches. At most one batch per source is
// in flight, guarded by a store-backed lock.
type Trigger struct {
	logs      *zap.SugaredLogger
	locker    Locker
	queue     ClaimQueue
	ledger    Ledger
	pool      WalletPool
	exec      Executor
	recovery  FailureScheduler
	publisher Publisher
	waiters   *Waiters
	cfg       TriggerConfig
	jitter    func() time.Duration
}

func NewTrigger(
	logger *zap.SugaredLogger,
	locker Locker,
	queue ClaimQueue,
	ledger Ledger,
	pool WalletPool,
	exec Executor,
	recovery FailureScheduler,
	publisher Publisher,
	waiters *Waiters,
	cfg TriggerConfig,
) *Trigger {
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	return &Trigger{
		logs:      logger,
		locker:    locker,
		queue:     queue,
		ledger:    ledger,
		pool:      pool,
		exec:      exec,
		recovery:  recovery,
		publisher: publisher,
		waiters:   waiters,
		cfg:       cfg,
		jitter:    wallet.Jitter,
	}
}

func BatchLockKey(source string) string {
	return "lock:batch:" + source
}

// TriggerBatch runs one batch for source. It is a no-op when another batch
// for the source holds the lock.
func (t *Trigger) TriggerBatch(ctx context.Context, source string) error {
	followUp, err := t.runBatch(ctx, source)
	if followUp {
		t.followUp(ctx, source)
	}
	return err
}

func (t *Trigger) HandleBatchTrigger(ctx context.Context, source string) error {
	return t.TriggerBatch(ctx, source)
}

// HandleApproval tops up the payout contract allowance of one wallet.
func (t *Trigger) HandleApproval(ctx context.Context, purpose, walletAddress string) error {
	if !common.IsHexAddress(walletAddress) {
		return fmt.Errorf("%w: wallet address %q", dispatch.ErrMalformedJob, walletAddress)
	}

	lease, err := t.pool.LeaseWallet(ctx, purpose, common.HexToAddress(walletAddress))
	switch {
	case errors.Is(err, wallet.ErrBusy):
		delay := t.jitter()
		if err := t.publisher.Publish(ctx, dispatch.NewApproval(purpose, walletAddress), delay); err != nil {
			return fmt.Errorf("republish approval: %w", err)
		}
		return nil
	case errors.Is(err, wallet.ErrUnknownWallet), errors.Is(err, wallet.ErrUnknownPurpose):
		t.logs.Errorw("dropping approval for unknown wallet",
			"purpose", purpose,
			"wallet", walletAddress,
			"error", err)
		return nil
	case err != nil:
		return fmt.Errorf("lease wallet: %w", err)
	}
	defer t.releaseLease(ctx, lease)

	minimum := t.cfg.RefillThreshold
	if minimum == nil {
		minimum = new(big.Int)
	}
	hash, err := t.exec.EnsureAllowance(ctx, lease, minimum)
	if err != nil {
		return fmt.Errorf("ensure allowance: %w", err)
	}

	t.logs.Infow("approval job done",
		"wallet", lease.WalletID,
		"tx_hash", hash)
	return nil
}

// runBatch reports whether the queue should be looked at again afterwards.
func (t *Trigger) runBatch(ctx context.Context, source string) (bool, error) {
	lock, err := t.locker.Obtain(ctx, BatchLockKey(source), t.cfg.LockTTL)
	if errors.Is(err, kv.ErrNotObtained) {
		t.logs.Debugw("batch already running", "source", source)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("obtain batch lock: %w", err)
	}
	defer func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, kv.ErrLockNotHeld) {
			t.logs.Warnw("release batch lock", "source", source, "error", err)
		}
	}()

	claims, err := t.queue.Pop(ctx, source, t.cfg.BatchSize)
	if err != nil {
		return false, fmt.Errorf("pop claims: %w", err)
	}
	if err := t.queue.ClearTimer(ctx, source); err != nil {
		t.logs.Warnw("clear batch timer", "source", source, "error", err)
	}
	if len(claims) == 0 {
		return false, nil
	}

	batch, err := t.filter(ctx, claims)
	if err != nil {
		t.pushBack(ctx, source, claims)
		return false, err
	}
	if len(batch) == 0 {
		return true, nil
	}

	lease, err := t.pool.Lease(ctx, source)
	if errors.Is(err, wallet.ErrBusy) {
		t.pushBack(ctx, source, batch)
		delay := t.jitter()
		if err := t.publisher.Publish(ctx, dispatch.NewBatchTrigger(source), delay); err != nil {
			t.logs.Errorw("publish busy retry", "source", source, "error", err)
		}
		t.logs.Infow("no wallet free, batch postponed",
			"source", source,
			"claims", len(batch),
			"retry_in", delay.String())
		return false, nil
	}
	if err != nil {
		t.pushBack(ctx, source, batch)
		return false, fmt.Errorf("lease wallet: %w", err)
	}
	defer t.releaseLease(ctx, lease)

	t.logs.Infow("executing batch",
		"source", source,
		"claims", len(batch),
		"wallet", lease.WalletID)

	res, execErr := t.exec.Execute(ctx, claim.Batch{Claims: batch, Lease: lease})
	return true, t.settle(ctx, source, batch, lease, res, execErr)
}

// filter drops pairs repeated within the batch and pairs already paid.
func (t *Trigger) filter(ctx context.Context, claims []claim.Claim) ([]claim.Claim, error) {
	seen := make(map[string]struct{}, len(claims))
	batch := make([]claim.Claim, 0, len(claims))
	for _, c := range claims {
		if _, dup := seen[c.PairKey()]; dup {
			t.waiters.resolve(claim.PayoutResult{ClaimID: c.ID, Status: claim.StatusAlreadyClaimed})
			continue
		}
		seen[c.PairKey()] = struct{}{}

		claimed, err := t.ledger.IsClaimed(ctx, c.UserKey, c.EventID)
		if err != nil {
			return nil, fmt.Errorf("check ledger: %w", err)
		}
		if claimed {
			t.clearPending(ctx, c)
			t.waiters.resolve(claim.PayoutResult{ClaimID: c.ID, Status: claim.StatusAlreadyClaimed})
			continue
		}
		batch = append(batch, c)
	}
	return batch, nil
}

func (t *Trigger) settle(ctx context.Context, source string, batch []claim.Claim, lease *wallet.Lease, res executor.TxResult, execErr error) error {
	switch {
	case execErr == nil:
		if err := t.ledger.RecordOutcome(ctx, batch, res.TxHash, true, ""); err != nil {
			t.logs.Errorw("record batch outcome", "tx_hash", res.TxHash, "error", err)
		}
		for _, c := range batch {
			t.clearPending(ctx, c)
			t.waiters.resolve(claim.PayoutResult{ClaimID: c.ID, Status: claim.StatusSuccess, TxHash: res.TxHash})
		}
		t.logs.Infow("batch executed",
			"source", source,
			"claims", len(batch),
			"tx_hash", res.TxHash)
		t.maybeRefill(ctx, lease, res.RemainingAllowance)
		return nil

	// a fatal error with submissions on record still goes through recovery,
	// which checks those hashes before anything becomes terminal
	case executor.IsFatal(execErr) && len(res.SubmittedHashes()) == 0:
		if err := t.recovery.MarkFailed(ctx, batch, execErr); err != nil {
			t.logs.Errorw("mark batch failed", "source", source, "error", err)
		}
		for _, c := range batch {
			t.waiters.resolve(claim.PayoutResult{ClaimID: c.ID, Status: claim.StatusFailed, Reason: execErr.Error()})
		}
		return nil

	default:
		if err := t.recovery.ScheduleBatch(ctx, batch, res.SubmittedHashes(), execErr); err != nil {
			t.pushBack(ctx, source, batch)
			return fmt.Errorf("schedule recovery: %w", err)
		}
		for _, c := range batch {
			t.waiters.resolve(claim.PayoutResult{ClaimID: c.ID, Status: claim.StatusProcessing})
		}
		t.logs.Warnw("batch handed to recovery",
			"source", source,
			"claims", len(batch),
			"error", execErr)
		return nil
	}
}

// followUp makes sure claims that arrived during the batch get their own.
func (t *Trigger) followUp(ctx context.Context, source string) {
	n, err := t.queue.Len(ctx, source)
	if err != nil {
		t.logs.Warnw("read queue length", "source", source, "error", err)
		return
	}
	if n == 0 {
		return
	}

	delay := time.Duration(0)
	if n < int64(t.cfg.BatchSize) {
		armed, err := t.queue.ArmTimer(ctx, source, t.cfg.BatchTimeout)
		if err != nil || !armed {
			return
		}
		delay = t.cfg.BatchTimeout
	}

	if err := t.publisher.Publish(ctx, dispatch.NewBatchTrigger(source), delay); err != nil {
		t.logs.Errorw("publish follow-up batch", "source", source, "error", err)
	}
}

func (t *Trigger) maybeRefill(ctx context.Context, lease *wallet.Lease, remaining *big.Int) {
	if t.cfg.RefillThreshold == nil || remaining == nil || remaining.Cmp(t.cfg.RefillThreshold) >= 0 {
		return
	}

	job := dispatch.NewApproval(lease.Purpose, lease.Address.Hex())
	if err := t.publisher.Publish(ctx, job, 0); err != nil {
		t.logs.Warnw("publish approval", "wallet", lease.WalletID, "error", err)
	}
}

func (t *Trigger) pushBack(ctx context.Context, source string, claims []claim.Claim) {
	if err := t.queue.PushFront(ctx, source, claims); err != nil {
		t.logs.Errorw("failed to return claims to the queue",
			"source", source,
			"claims", len(claims),
			"error", err)
	}
}

func (t *Trigger) releaseLease(ctx context.Context, lease *wallet.Lease) {
	if err := t.pool.Release(context.WithoutCancel(ctx), lease); err != nil {
		t.logs.Warnw("release wallet", "wallet", lease.WalletID, "error", err)
	}
}

func (t *Trigger) clearPending(ctx context.Context, c claim.Claim) {
	if err := t.queue.ClearPending(ctx, c.UserKey, c.EventID); err != nil {
		t.logs.Warnw("clear pending marker", "claim_id", c.ID, "error", err)
	}
}
