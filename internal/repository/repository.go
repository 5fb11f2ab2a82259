package repository

import (
	"context"
	"errors"
	"fmt"

	"payoutd/internal/db"
)

var (
	ErrEntryNotFound   = errors.New("ledger entry not found")
	ErrFailureNotFound = errors.New("failure record not found")
)

var ledgerUpsert = db.UpsertOptions{
	ConflictColumns: []string{"user_key", "event_id"},
	UpdateColumns:   []string{"claim_id", "recipient_address", "source", "tx_hash", "success", "error", "updated_at"},
	UpdateWhere:     "ledger_entries.success = false",
}

type PayoutRepository struct {
	db Storage
}

func NewPayoutRepository(db Storage) *PayoutRepository {
	return &PayoutRepository{
		db: db,
	}
}

func (r *PayoutRepository) MigrateTables() error {
	err := r.db.MigrateTable(&LedgerEntry{}, &FailureRecord{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// UpsertOutcomes writes all entries in one statement. A successful row is never overwritten.
func (r *PayoutRepository) UpsertOutcomes(ctx context.Context, entries []LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	err := r.db.Upsert(ctx, &entries, ledgerUpsert)
	if err != nil {
		return fmt.Errorf("upsert ledger entries: %w", err)
	}

	return nil
}

func (r *PayoutRepository) GetEntry(ctx context.Context, userKey, eventID string) (LedgerEntry, error) {
	var entry LedgerEntry

	err := r.db.FindOne(ctx, &entry, map[string]any{
		"user_key": userKey,
		"event_id": eventID,
	})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return LedgerEntry{}, ErrEntryNotFound
		}
		return LedgerEntry{}, fmt.Errorf("get ledger entry: %w", err)
	}

	return entry, nil
}

func (r *PayoutRepository) CreateFailures(ctx context.Context, records []FailureRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := r.db.Create(ctx, &records)
	if err != nil {
		return fmt.Errorf("create failure records: %w", err)
	}

	return nil
}

func (r *PayoutRepository) GetFailure(ctx context.Context, id string) (FailureRecord, error) {
	var record FailureRecord

	err := r.db.GetOneBy(ctx, "id", id, &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return FailureRecord{}, ErrFailureNotFound
		}
		return FailureRecord{}, fmt.Errorf("get failure record: %w", err)
	}

	return record, nil
}

func (r *PayoutRepository) UpdateFailure(ctx context.Context, record *FailureRecord) error {
	err := r.db.Save(ctx, record)
	if err != nil {
		return fmt.Errorf("update failure record %s: %w", record.ID, err)
	}

	return nil
}

func (r *PayoutRepository) DeleteFailure(ctx context.Context, id string) error {
	err := r.db.DeleteBy(ctx, &FailureRecord{}, "id", id)
	if err != nil {
		return fmt.Errorf("delete failure record %s: %w", id, err)
	}

	return nil
}

func (r *PayoutRepository) ListFailures(ctx context.Context, statuses ...string) ([]FailureRecord, error) {
	records := []FailureRecord{}

	err := r.db.GetAllBy(ctx, "status", statuses, &records)
	if err != nil {
		return records, fmt.Errorf("list failure records: %w", err)
	}

	return records, nil
}
