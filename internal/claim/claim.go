package claim

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"payoutd/internal/wallet"
)

// Claim is one request to pay the reward for a (UserKey, EventID) pair.
type Claim struct {
	ID               string            `msgpack:"id" json:"id"`
	UserKey          string            `msgpack:"user_key" json:"userKey"`
	RecipientAddress string            `msgpack:"recipient" json:"recipientAddress"`
	EventID          string            `msgpack:"event_id" json:"eventId"`
	Source           string            `msgpack:"source" json:"source"`
	EnqueuedAt       time.Time         `msgpack:"enqueued_at" json:"enqueuedAt"`
	Metadata         map[string]string `msgpack:"metadata,omitempty" json:"metadata,omitempty"`
}

// NewID builds the claim id from the recipient, event and enqueue time.
func NewID(recipient, eventID string, at time.Time) string {
	return fmt.Sprintf("%s:%s:%d", strings.ToLower(recipient), eventID, at.UnixNano())
}

// PairKey identifies the idempotency scope of a claim.
func (c Claim) PairKey() string {
	return PairKey(c.UserKey, c.EventID)
}

// PairKey joins a user key and event id. Both are escaped so that no two
// pairs share a key, whatever separators they contain.
func PairKey(userKey, eventID string) string {
	return url.QueryEscape(userKey) + ":" + url.QueryEscape(eventID)
}

// Batch is the transient unit handed to the executor.
type Batch struct {
	Claims []Claim
	Lease  *wallet.Lease
}

type Status string

const (
	StatusSuccess        Status = "success"
	StatusProcessing     Status = "processing"
	StatusFailed         Status = "failed"
	StatusAlreadyClaimed Status = "already_claimed"
	StatusNotFound       Status = "not_found"
)

// PayoutResult is what a caller learns about its claim.
type PayoutResult struct {
	ClaimID string `json:"claimId,omitempty"`
	Status  Status `json:"status"`
	TxHash  string `json:"txHash,omitempty"`
	Reason  string `json:"error,omitempty"`
}
