package ledger

import (
	"context"

	"payoutd/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	UpsertOutcomes(ctx context.Context, entries []repository.LedgerEntry) error
	GetEntry(ctx context.Context, userKey, eventID string) (repository.LedgerEntry, error)
}

type DiscrepancyLog interface {
	Push(ctx context.Context, key string, values ...[]byte) (int64, error)
	PopN(ctx context.Context, key string, n int64) ([][]byte, error)
}

// PaidPairs is a positive-only cache of paid pairs.
type PaidPairs interface {
	Paid(ctx context.Context, userKey, eventID string) (string, bool, error)
	Remember(ctx context.Context, userKey, eventID, txHash string) error
}
