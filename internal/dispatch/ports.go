package dispatch

import (
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name BatchHandler . BatchHandler
type BatchHandler interface {
	HandleBatchTrigger(ctx context.Context, source string) error
}

//counterfeiter:generate -o fake -fake-name RetryHandler . RetryHandler
type RetryHandler interface {
	HandleRetry(ctx context.Context, failureID string) error
}

//counterfeiter:generate -o fake -fake-name ApprovalHandler . ApprovalHandler
type ApprovalHandler interface {
	HandleApproval(ctx context.Context, purpose, walletAddress string) error
}

// Dispatcher routes a delivered job to its handler.
type Dispatcher interface {
	Dispatch(ctx context.Context, job Job) error
}
