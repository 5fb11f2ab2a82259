package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payoutd/internal/claim"
	"payoutd/internal/repository"

	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

const (
	DiscrepancyKey = "ledger:discrepancies"
	// PaidTTL is how long a paid pair stays cached.
	PaidTTL = 24 * time.Hour
)

var ErrNotFound = errors.New("no ledger entry")

// Discrepancy is a confirmed payout whose ledger write failed.
type Discrepancy struct {
	Claim  claim.Claim `msgpack:"claim"`
	TxHash string      `msgpack:"tx_hash"`
	At     time.Time   `msgpack:"at"`
}

type Reconciler struct {
	logs  *zap.SugaredLogger
	repo  Repository
	paid  PaidPairs
	gaps  DiscrepancyLog
}

// NewReconciler builds a Reconciler. paid may be nil.
func NewReconciler(logger *zap.SugaredLogger, repo Repository, paid PaidPairs, gaps DiscrepancyLog) *Reconciler {
	return &Reconciler{
		logs: logger,
		repo: repo,
		paid: paid,
		gaps: gaps,
	}
}

// RecordOutcome writes one ledger row per claim in a single statement.
// When a confirmed payout cannot be written the gap is logged and kept for
// Repair, and the call still succeeds: the user has been paid.
func (r *Reconciler) RecordOutcome(ctx context.Context, claims []claim.Claim, txHash string, success bool, errMsg string) error {
	if len(claims) == 0 {
		return nil
	}

	entries := make([]repository.LedgerEntry, 0, len(claims))
	for _, c := range claims {
		entries = append(entries, repository.NewLedgerEntry(c, txHash, success, errMsg))
	}

	err := r.repo.UpsertOutcomes(ctx, entries)
	if err != nil {
		if !success {
			return fmt.Errorf("record failed outcome: %w", err)
		}

		r.logs.Errorw("reconciliation discrepancy: payout confirmed but ledger write failed",
			"tx_hash", txHash,
			"claims", len(claims),
			"error", err)
		r.keepDiscrepancies(ctx, claims, txHash)
		return nil
	}

	if success {
		r.rememberClaimed(ctx, claims, txHash)
	}
	return nil
}

// IsClaimed reports whether a successful payout exists for the pair.
// Only positive answers are cached.
func (r *Reconciler) IsClaimed(ctx context.Context, userKey, eventID string) (bool, error) {
	if r.paid != nil {
		_, ok, err := r.paid.Paid(ctx, userKey, eventID)
		if err != nil {
			r.logs.Warnw("read paid cache", "user_key", userKey, "event_id", eventID, "error", err)
		}
		if ok {
			return true, nil
		}
	}

	entry, err := r.repo.GetEntry(ctx, userKey, eventID)
	if errors.Is(err, repository.ErrEntryNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get ledger entry: %w", err)
	}

	if entry.Success && r.paid != nil {
		var txHash string
		if entry.TxHash != nil {
			txHash = *entry.TxHash
		}
		if err := r.paid.Remember(ctx, userKey, eventID, txHash); err != nil {
			r.logs.Warnw("cache paid pair", "user_key", userKey, "event_id", eventID, "error", err)
		}
	}
	return entry.Success, nil
}

func (r *Reconciler) Entry(ctx context.Context, userKey, eventID string) (repository.LedgerEntry, error) {
	entry, err := r.repo.GetEntry(ctx, userKey, eventID)
	if errors.Is(err, repository.ErrEntryNotFound) {
		return repository.LedgerEntry{}, ErrNotFound
	}
	if err != nil {
		return repository.LedgerEntry{}, fmt.Errorf("get ledger entry: %w", err)
	}
	return entry, nil
}

// Repair replays up to limit recorded discrepancies. Entries that still fail
// are pushed back. It returns how many were written.
func (r *Reconciler) Repair(ctx context.Context, limit int) (int, error) {
	raw, err := r.gaps.PopN(ctx, DiscrepancyKey, int64(limit))
	if err != nil {
		return 0, fmt.Errorf("pop discrepancies: %w", err)
	}

	var repaired int
	var failed [][]byte
	var aggrErr error
	for _, b := range raw {
		var d Discrepancy
		if err := msgpack.Unmarshal(b, &d); err != nil {
			r.logs.Errorw("dropping undecodable discrepancy", "raw", string(b), "error", err)
			continue
		}

		entry := repository.NewLedgerEntry(d.Claim, d.TxHash, true, "")
		if err := r.repo.UpsertOutcomes(ctx, []repository.LedgerEntry{entry}); err != nil {
			failed = append(failed, b)
			aggrErr = errors.Join(aggrErr, fmt.Errorf("repair claim %s: %w", d.Claim.ID, err))
			continue
		}

		r.rememberClaimed(ctx, []claim.Claim{d.Claim}, d.TxHash)
		repaired++
		r.logs.Infow("ledger discrepancy repaired",
			"claim_id", d.Claim.ID,
			"tx_hash", d.TxHash)
	}

	if len(failed) > 0 {
		if _, err := r.gaps.Push(ctx, DiscrepancyKey, failed...); err != nil {
			aggrErr = errors.Join(aggrErr, fmt.Errorf("requeue discrepancies: %w", err))
		}
	}

	return repaired, aggrErr
}

func (r *Reconciler) keepDiscrepancies(ctx context.Context, claims []claim.Claim, txHash string) {
	values := make([][]byte, 0, len(claims))
	for _, c := range claims {
		b, err := msgpack.Marshal(Discrepancy{Claim: c, TxHash: txHash, At: time.Now().UTC()})
		if err != nil {
			r.logs.Errorw("encode discrepancy", "claim_id", c.ID, "error", err)
			continue
		}
		values = append(values, b)
	}

	if _, err := r.gaps.Push(ctx, DiscrepancyKey, values...); err != nil {
		r.logs.Errorw("failed to persist reconciliation discrepancy",
			"tx_hash", txHash,
			"error", err)
	}
	r.rememberClaimed(ctx, claims, txHash)
}

func (r *Reconciler) rememberClaimed(ctx context.Context, claims []claim.Claim, txHash string) {
	if r.paid == nil {
		return
	}
	for _, c := range claims {
		if err := r.paid.Remember(ctx, c.UserKey, c.EventID, txHash); err != nil {
			r.logs.Warnw("cache paid pair", "claim_id", c.ID, "tx_hash", txHash, "error", err)
		}
	}
}
