package dispatch

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jellydator/validation"
)

var ErrMalformedJob = errors.New("malformed job")

type Kind string

const (
	KindBatchTrigger Kind = "batch_trigger"
	KindClaimRetry   Kind = "claim_retry"
	KindApproval     Kind = "approval"
)

type BatchTrigger struct {
	Source string `json:"source" msgpack:"source"`
}

type ClaimRetry struct {
	FailureID string `json:"failureId" msgpack:"failure_id"`
}

type Approval struct {
	Purpose       string `json:"purpose" msgpack:"purpose"`
	WalletAddress string `json:"walletAddress" msgpack:"wallet_address"`
}

// Job is a unit of delayed work. Exactly one payload matching Kind is set.
type Job struct {
	ID           string        `json:"id" msgpack:"id"`
	Kind         Kind          `json:"kind" msgpack:"kind"`
	BatchTrigger *BatchTrigger `json:"batchTrigger,omitempty" msgpack:"batch_trigger,omitempty"`
	ClaimRetry   *ClaimRetry   `json:"claimRetry,omitempty" msgpack:"claim_retry,omitempty"`
	Approval     *Approval     `json:"approval,omitempty" msgpack:"approval,omitempty"`
}

func NewBatchTrigger(source string) Job {
	return Job{
		ID:           uuid.NewString(),
		Kind:         KindBatchTrigger,
		BatchTrigger: &BatchTrigger{Source: source},
	}
}

func NewClaimRetry(failureID string) Job {
	return Job{
		ID:         uuid.NewString(),
		Kind:       KindClaimRetry,
		ClaimRetry: &ClaimRetry{FailureID: failureID},
	}
}

func NewApproval(purpose, walletAddress string) Job {
	return Job{
		ID:       uuid.NewString(),
		Kind:     KindApproval,
		Approval: &Approval{Purpose: purpose, WalletAddress: walletAddress},
	}
}

func (j Job) Validate() error {
	err := validation.ValidateStruct(&j,
		validation.Field(&j.ID, validation.Required),
		validation.Field(&j.Kind, validation.Required, validation.In(KindBatchTrigger, KindClaimRetry, KindApproval)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedJob, err)
	}

	switch j.Kind {
	case KindBatchTrigger:
		if j.BatchTrigger == nil || j.BatchTrigger.Source == "" {
			return fmt.Errorf("%w: batch trigger without source", ErrMalformedJob)
		}
	case KindClaimRetry:
		if j.ClaimRetry == nil || j.ClaimRetry.FailureID == "" {
			return fmt.Errorf("%w: claim retry without failure id", ErrMalformedJob)
		}
	case KindApproval:
		if j.Approval == nil || j.Approval.Purpose == "" || j.Approval.WalletAddress == "" {
			return fmt.Errorf("%w: approval without wallet", ErrMalformedJob)
		}
	}
	return nil
}
