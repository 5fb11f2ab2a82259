package recovery

import (
	"context"
	"time"

	"payoutd/internal/claim"
	"payoutd/internal/dispatch"
	"payoutd/internal/executor"
	"payoutd/internal/kv"
	"payoutd/internal/repository"
	"payoutd/internal/wallet"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name FailureStore . FailureStore
type FailureStore interface {
	CreateFailures(ctx context.Context, records []repository.FailureRecord) error
	GetFailure(ctx context.Context, id string) (repository.FailureRecord, error)
	UpdateFailure(ctx context.Context, record *repository.FailureRecord) error
	DeleteFailure(ctx context.Context, id string) error
	ListFailures(ctx context.Context, statuses ...string) ([]repository.FailureRecord, error)
}

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	RecordOutcome(ctx context.Context, claims []claim.Claim, txHash string, success bool, errMsg string) error
	IsClaimed(ctx context.Context, userKey, eventID string) (bool, error)
}

//counterfeiter:generate -o fake -fake-name WalletPool . WalletPool
type WalletPool interface {
	Lease(ctx context.Context, purpose string) (*wallet.Lease, error)
	Release(ctx context.Context, lease *wallet.Lease) error
}

//counterfeiter:generate -o fake -fake-name Executor . Executor
type Executor interface {
	Execute(ctx context.Context, batch claim.Batch) (executor.TxResult, error)
	FindConfirmed(ctx context.Context, hashes []string) (executor.TxResult, bool, error)
}

//counterfeiter:generate -o fake -fake-name Publisher . Publisher
type Publisher interface {
	Publish(ctx context.Context, job dispatch.Job, delay time.Duration) error
}

type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (kv.Lock, error)
}

type PendingMarkers interface {
	ClearPending(ctx context.Context, userKey, eventID string) error
}
