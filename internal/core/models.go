package core

import "errors"

var (
	ErrInvalidAddress    = errors.New("invalid recipient address")
	ErrUnknownSource     = errors.New("unknown claim source")
	ErrAlreadyClaimed    = errors.New("reward already claimed")
	ErrClaimInProgress   = errors.New("claim already in progress")
	ErrProcessingTimeout = errors.New("payout still processing, poll the claim status")
	ErrRetryScheduled    = errors.New("payout delayed, retry scheduled")
	ErrPayoutFailed      = errors.New("payout failed")
)

// ClaimMessage is an inbound reward claim.
type ClaimMessage struct {
	UserKey          string
	RecipientAddress string
	EventID          string
	Source           string
	Metadata         map[string]string
}
