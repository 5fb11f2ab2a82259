package recovery

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"payoutd/internal/claim"
	"payoutd/internal/dispatch"
	"payoutd/internal/executor"
	"payoutd/internal/kv"
	"payoutd/internal/repository"
	"payoutd/internal/wallet"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// deliveries arriving this much ahead of NextRetryAt are still processed
const earlyTolerance = 5 * time.Second

type Config struct {
	Backoff Backoff
	// LockTTL bounds one retry run. It must exceed the worst-case execution time.
	LockTTL time.Duration
	// SweepGrace is how overdue a scheduled retry must be before Sweep republishes it.
	SweepGrace time.Duration
}

// Scheduler drives every failed claim through the retry ladder until it
// reaches a terminal status. It never sleeps: each retry is a delayed job.
type Scheduler struct {
	logs      *zap.SugaredLogger
	store     FailureStore
	ledger    Ledger
	pool      WalletPool
	exec      Executor
	publisher Publisher
	locker    Locker
	pending   PendingMarkers
	cfg       Config
	now       func() time.Time
	jitter    func() time.Duration
}

func NewScheduler(
	logger *zap.SugaredLogger,
	store FailureStore,
	ledger Ledger,
	pool WalletPool,
	exec Executor,
	publisher Publisher,
	locker Locker,
	pending PendingMarkers,
	cfg Config,
) *Scheduler {
	if cfg.Backoff.Len() == 0 {
		cfg.Backoff = FastSchedule()
	}
	if cfg.SweepGrace <= 0 {
		cfg.SweepGrace = time.Minute
	}
	return &Scheduler{
		logs:      logger,
		store:     store,
		ledger:    ledger,
		pool:      pool,
		exec:      exec,
		publisher: publisher,
		locker:    locker,
		pending:   pending,
		cfg:       cfg,
		now:       time.Now,
		jitter:    wallet.Jitter,
	}
}

func RetryLockKey(failureID string) string {
	return "lock:retry:" + failureID
}

// ScheduleBatch splits a batch whose inline retries ran out into one failure
// record per claim and schedules the first retry of each. hashes are the
// submissions already sent for the batch.
func (s *Scheduler) ScheduleBatch(ctx context.Context, claims []claim.Claim, hashes []string, cause error) error {
	if len(claims) == 0 {
		return nil
	}

	delay, _ := s.cfg.Backoff.Next(0)
	next := s.now().Add(delay)

	records := make([]repository.FailureRecord, 0, len(claims))
	for _, c := range claims {
		rec := s.newRecord(c, cause)
		rec.TxHashes = slices.Clone(hashes)
		if err := Transition(&rec, StatusRetryScheduled); err != nil {
			return err
		}
		rec.NextRetryAt = &next
		records = append(records, rec)
	}

	if err := s.store.CreateFailures(ctx, records); err != nil {
		return fmt.Errorf("create failure records: %w", err)
	}

	for _, rec := range records {
		s.publishRetry(ctx, rec, delay)
	}

	s.logs.Infow("batch handed to recovery",
		"claims", len(claims),
		"retry_in", delay.String(),
		"error", cause)
	return nil
}

// MarkFailed records claims that failed with a non-retryable error.
func (s *Scheduler) MarkFailed(ctx context.Context, claims []claim.Claim, cause error) error {
	if len(claims) == 0 {
		return nil
	}

	records := make([]repository.FailureRecord, 0, len(claims))
	for _, c := range claims {
		rec := s.newRecord(c, cause)
		if err := Transition(&rec, StatusFailed); err != nil {
			return err
		}
		records = append(records, rec)
	}

	var errs error
	if err := s.store.CreateFailures(ctx, records); err != nil {
		errs = errors.Join(errs, fmt.Errorf("create failure records: %w", err))
	}
	if err := s.ledger.RecordOutcome(ctx, claims, "", false, cause.Error()); err != nil {
		errs = errors.Join(errs, fmt.Errorf("record failed outcome: %w", err))
	}
	for _, c := range claims {
		s.clearPending(ctx, c)
	}

	s.logs.Errorw("claims failed permanently",
		"claims", len(claims),
		"error", cause)
	return errs
}

// HandleRetry runs one retry of a failure record. It is safe under
// at-least-once delivery: missing or terminal records are ignored and a
// per-record lock keeps concurrent deliveries apart.
func (s *Scheduler) HandleRetry(ctx context.Context, failureID string) error {
	lock, err := s.locker.Obtain(ctx, RetryLockKey(failureID), s.cfg.LockTTL)
	if errors.Is(err, kv.ErrNotObtained) {
		s.logs.Infow("retry already running", "failure_id", failureID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("obtain retry lock: %w", err)
	}
	defer func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, kv.ErrLockNotHeld) {
			s.logs.Warnw("release retry lock", "failure_id", failureID, "error", err)
		}
	}()

	rec, err := s.store.GetFailure(ctx, failureID)
	if errors.Is(err, repository.ErrFailureNotFound) {
		s.logs.Infow("failure record gone, skipping retry", "failure_id", failureID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get failure record: %w", err)
	}

	status := Status(rec.Status)
	if status.Terminal() {
		return nil
	}
	if status == StatusRetryScheduled && rec.NextRetryAt != nil && rec.NextRetryAt.After(s.now().Add(earlyTolerance)) {
		s.logs.Infow("early retry delivery ignored",
			"failure_id", failureID,
			"next_retry_at", rec.NextRetryAt)
		return nil
	}

	return s.retry(ctx, &rec)
}

// Sweep republishes retries whose job was lost: scheduled records that are
// overdue and processing records whose run outlived the retry lock.
func (s *Scheduler) Sweep(ctx context.Context) (int, error) {
	records, err := s.store.ListFailures(ctx, string(StatusRetryScheduled), string(StatusProcessing))
	if err != nil {
		return 0, fmt.Errorf("list failure records: %w", err)
	}

	now := s.now()
	var republished int
	for _, rec := range records {
		var orphaned bool
		switch Status(rec.Status) {
		case StatusRetryScheduled:
			orphaned = rec.NextRetryAt == nil || now.Sub(*rec.NextRetryAt) > s.cfg.SweepGrace
		case StatusProcessing:
			orphaned = now.Sub(rec.UpdatedAt) > s.cfg.LockTTL
		}
		if !orphaned {
			continue
		}

		if err := s.publisher.Publish(ctx, dispatch.NewClaimRetry(rec.ID), 0); err != nil {
			s.logs.Errorw("failed to republish retry", "failure_id", rec.ID, "error", err)
			continue
		}
		republished++
	}

	if republished > 0 {
		s.logs.Infow("orphaned retries republished", "count", republished)
	}
	return republished, nil
}

func (s *Scheduler) retry(ctx context.Context, rec *repository.FailureRecord) error {
	c := rec.Claim()

	claimed, err := s.ledger.IsClaimed(ctx, c.UserKey, c.EventID)
	if err != nil {
		return fmt.Errorf("check ledger: %w", err)
	}

	// a record still in processing was left behind by a run whose lock expired
	if Status(rec.Status) != StatusProcessing {
		if err := Transition(rec, StatusProcessing); err != nil {
			return err
		}
		if err := s.store.UpdateFailure(ctx, rec); err != nil {
			return fmt.Errorf("update failure record: %w", err)
		}
	}

	if claimed {
		return s.finish(ctx, rec, StatusAlreadyClaimed, "")
	}

	found, ok, err := s.exec.FindConfirmed(ctx, rec.TxHashes)
	if err != nil {
		s.logs.Warnw("check earlier submissions", "failure_id", rec.ID, "error", err)
	}
	if ok {
		return s.finish(ctx, rec, StatusSuccess, found.TxHash)
	}

	lease, err := s.pool.Lease(ctx, c.Source)
	switch {
	case errors.Is(err, wallet.ErrBusy):
		return s.postpone(ctx, rec)
	case errors.Is(err, wallet.ErrUnknownPurpose):
		s.recordError(rec, err)
		return s.giveUp(ctx, rec, StatusFailed, err)
	case err != nil:
		return s.fail(ctx, rec, fmt.Errorf("lease wallet: %w", err))
	}
	defer func() {
		if err := s.pool.Release(context.WithoutCancel(ctx), lease); err != nil {
			s.logs.Warnw("release wallet", "wallet", lease.WalletID, "error", err)
		}
	}()

	res, err := s.exec.Execute(ctx, claim.Batch{Claims: []claim.Claim{c}, Lease: lease})
	for _, h := range res.SubmittedHashes() {
		if !slices.Contains(rec.TxHashes, h) {
			rec.TxHashes = append(rec.TxHashes, h)
		}
	}

	switch {
	case err == nil:
		return s.finish(ctx, rec, StatusSuccess, res.TxHash)
	case executor.IsFatal(err):
		s.recordError(rec, err)
		return s.giveUp(ctx, rec, StatusFailed, err)
	default:
		return s.fail(ctx, rec, err)
	}
}

// finish resolves a record that needs no further retries and deletes it.
func (s *Scheduler) finish(ctx context.Context, rec *repository.FailureRecord, status Status, txHash string) error {
	if err := Transition(rec, status); err != nil {
		return err
	}

	if status == StatusSuccess {
		if err := s.ledger.RecordOutcome(ctx, []claim.Claim{rec.Claim()}, txHash, true, ""); err != nil {
			s.logs.Errorw("ledger write failed after recovered payout, keeping record",
				"failure_id", rec.ID,
				"tx_hash", txHash,
				"error", err)
			rec.NextRetryAt = nil
			if err := s.store.UpdateFailure(ctx, rec); err != nil {
				return fmt.Errorf("update failure record: %w", err)
			}
			s.clearPending(ctx, rec.Claim())
			return nil
		}
	}

	if err := s.store.DeleteFailure(ctx, rec.ID); err != nil {
		return fmt.Errorf("delete failure record: %w", err)
	}
	s.clearPending(ctx, rec.Claim())

	s.logs.Infow("claim recovered",
		"failure_id", rec.ID,
		"claim_id", rec.ClaimID,
		"status", status,
		"tx_hash", txHash,
		"attempt", rec.Attempt)
	return nil
}

// fail handles a transient failure: next rung of the ladder, or give up.
func (s *Scheduler) fail(ctx context.Context, rec *repository.FailureRecord, cause error) error {
	rec.Attempt++
	s.recordError(rec, cause)

	delay, ok := s.cfg.Backoff.Next(rec.Attempt)
	if !ok {
		return s.giveUp(ctx, rec, StatusMaxRetriesExceeded, cause)
	}

	if err := s.schedule(ctx, rec, delay); err != nil {
		return err
	}
	s.logs.Warnw("claim retry failed",
		"failure_id", rec.ID,
		"attempt", rec.Attempt,
		"retry_in", delay.String(),
		"error", cause)
	return nil
}

// postpone reschedules without spending an attempt.
func (s *Scheduler) postpone(ctx context.Context, rec *repository.FailureRecord) error {
	delay := s.jitter()
	if err := s.schedule(ctx, rec, delay); err != nil {
		return err
	}
	s.logs.Infow("no wallet free, retry postponed",
		"failure_id", rec.ID,
		"retry_in", delay.String())
	return nil
}

func (s *Scheduler) schedule(ctx context.Context, rec *repository.FailureRecord, delay time.Duration) error {
	if err := Transition(rec, StatusRetryScheduled); err != nil {
		return err
	}
	next := s.now().Add(delay)
	rec.NextRetryAt = &next
	if err := s.store.UpdateFailure(ctx, rec); err != nil {
		return fmt.Errorf("update failure record: %w", err)
	}
	s.publishRetry(ctx, *rec, delay)
	return nil
}

func (s *Scheduler) giveUp(ctx context.Context, rec *repository.FailureRecord, status Status, cause error) error {
	if err := Transition(rec, status); err != nil {
		return err
	}
	rec.NextRetryAt = nil
	if err := s.store.UpdateFailure(ctx, rec); err != nil {
		return fmt.Errorf("update failure record: %w", err)
	}

	c := rec.Claim()
	if err := s.ledger.RecordOutcome(ctx, []claim.Claim{c}, "", false, cause.Error()); err != nil {
		s.logs.Errorw("failed to record failed outcome", "failure_id", rec.ID, "error", err)
	}
	s.clearPending(ctx, c)

	s.logs.Errorw("claim gave up",
		"failure_id", rec.ID,
		"claim_id", rec.ClaimID,
		"status", status,
		"attempt", rec.Attempt,
		"error", cause)
	return nil
}

func (s *Scheduler) newRecord(c claim.Claim, cause error) repository.FailureRecord {
	rec := repository.NewFailureRecord(uuid.NewString(), c)
	rec.Status = string(StatusPending)
	s.recordError(&rec, cause)
	return rec
}

func (s *Scheduler) recordError(rec *repository.FailureRecord, err error) {
	rec.LastError = err.Error()
	rec.ErrorHistory = append(rec.ErrorHistory,
		fmt.Sprintf("%s attempt %d: %s", s.now().UTC().Format(time.RFC3339), rec.Attempt, err))
}

func (s *Scheduler) publishRetry(ctx context.Context, rec repository.FailureRecord, delay time.Duration) {
	if err := s.publisher.Publish(ctx, dispatch.NewClaimRetry(rec.ID), delay); err != nil {
		s.logs.Errorw("failed to publish retry, left for sweep",
			"failure_id", rec.ID,
			"error", err)
	}
}

func (s *Scheduler) clearPending(ctx context.Context, c claim.Claim) {
	if s.pending == nil {
		return
	}
	if err := s.pending.ClearPending(ctx, c.UserKey, c.EventID); err != nil {
		s.logs.Warnw("clear pending marker", "claim_id", c.ID, "error", err)
	}
}
