package dispatch

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Router struct {
	logs      *zap.SugaredLogger
	batches   BatchHandler
	retries   RetryHandler
	approvals ApprovalHandler
}

func NewRouter(logger *zap.SugaredLogger, batches BatchHandler, retries RetryHandler, approvals ApprovalHandler) *Router {
	return &Router{
		logs:      logger,
		batches:   batches,
		retries:   retries,
		approvals: approvals,
	}
}

// Dispatch validates the job and hands it to the handler for its kind.
// Malformed jobs return ErrMalformedJob and should not be redelivered.
func (r *Router) Dispatch(ctx context.Context, job Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	r.logs.Infow("dispatching job", "job_id", job.ID, "kind", job.Kind)

	var err error
	switch job.Kind {
	case KindBatchTrigger:
		err = r.batches.HandleBatchTrigger(ctx, job.BatchTrigger.Source)
	case KindClaimRetry:
		err = r.retries.HandleRetry(ctx, job.ClaimRetry.FailureID)
	case KindApproval:
		err = r.approvals.HandleApproval(ctx, job.Approval.Purpose, job.Approval.WalletAddress)
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrMalformedJob, job.Kind)
	}
	if err != nil {
		return fmt.Errorf("handle %s job %s: %w", job.Kind, job.ID, err)
	}
	return nil
}
