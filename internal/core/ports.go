package core

import (
	"context"
	"math/big"
	"time"

	"payoutd/internal/claim"
	"payoutd/internal/dispatch"
	"payoutd/internal/executor"
	"payoutd/internal/kv"
	"payoutd/internal/repository"
	"payoutd/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

type ClaimQueue interface {
	Push(ctx context.Context, c claim.Claim) (int64, error)
	PushFront(ctx context.Context, source string, claims []claim.Claim) error
	Pop(ctx context.Context, source string, n int) ([]claim.Claim, error)
	Len(ctx context.Context, source string) (int64, error)
	ArmTimer(ctx context.Context, source string, ttl time.Duration) (bool, error)
	ClearTimer(ctx context.Context, source string) error
	MarkPending(ctx context.Context, userKey, eventID, claimID string, ttl time.Duration) (bool, error)
	PendingClaim(ctx context.Context, userKey, eventID string) (string, bool, error)
	ClearPending(ctx context.Context, userKey, eventID string) error
}

type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (kv.Lock, error)
}

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	RecordOutcome(ctx context.Context, claims []claim.Claim, txHash string, success bool, errMsg string) error
	IsClaimed(ctx context.Context, userKey, eventID string) (bool, error)
	Entry(ctx context.Context, userKey, eventID string) (repository.LedgerEntry, error)
}

//counterfeiter:generate -o fake -fake-name WalletPool . WalletPool
type WalletPool interface {
	Lease(ctx context.Context, purpose string) (*wallet.Lease, error)
	LeaseWallet(ctx context.Context, purpose string, address common.Address) (*wallet.Lease, error)
	Release(ctx context.Context, lease *wallet.Lease) error
}

//counterfeiter:generate -o fake -fake-name Executor . Executor
type Executor interface {
	Execute(ctx context.Context, batch claim.Batch) (executor.TxResult, error)
	EnsureAllowance(ctx context.Context, lease *wallet.Lease, minimum *big.Int) (string, error)
}

//counterfeiter:generate -o fake -fake-name FailureScheduler . FailureScheduler
type FailureScheduler interface {
	ScheduleBatch(ctx context.Context, claims []claim.Claim, hashes []string, cause error) error
	MarkFailed(ctx context.Context, claims []claim.Claim, cause error) error
}

//counterfeiter:generate -o fake -fake-name Publisher . Publisher
type Publisher interface {
	Publish(ctx context.Context, job dispatch.Job, delay time.Duration) error
}

//counterfeiter:generate -o fake -fake-name BatchTrigger . BatchTrigger
type BatchTrigger interface {
	TriggerBatch(ctx context.Context, source string) error
}
