package repository

import (
	"time"

	"payoutd/internal/claim"
)

// LedgerEntry is the durable outcome of a claim. Once Success is true the row never changes.
type LedgerEntry struct {
	ID               uint      `gorm:"primaryKey"`
	UserKey          string    `gorm:"size:128;not null;uniqueIndex:idx_ledger_user_event"`
	EventID          string    `gorm:"size:128;not null;uniqueIndex:idx_ledger_user_event"`
	ClaimID          string    `gorm:"size:256;not null"`
	RecipientAddress string    `gorm:"size:42;not null"` // 0x + 40 hex
	Source           string    `gorm:"size:32;not null"`
	TxHash           *string   `gorm:"size:66"` // nil when the payout failed
	Success          bool      `gorm:"not null;default:false;index"`
	Error            string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// FailureRecord tracks the retry ladder of one claim.
type FailureRecord struct {
	ID               string            `gorm:"primaryKey;size:36"`
	ClaimID          string            `gorm:"size:256;not null;index"`
	UserKey          string            `gorm:"size:128;not null;index"`
	RecipientAddress string            `gorm:"size:42;not null"`
	EventID          string            `gorm:"size:128;not null"`
	Source           string            `gorm:"size:32;not null"`
	Metadata         map[string]string `gorm:"serializer:json;type:jsonb"`
	Status           string            `gorm:"size:32;not null;index"`
	Attempt          int               `gorm:"not null;default:0"`
	NextRetryAt      *time.Time
	LastError        string    `gorm:"type:text"`
	ErrorHistory     []string  `gorm:"serializer:json;type:jsonb"`
	TxHashes         []string  `gorm:"serializer:json;type:jsonb"` // submitted, unconfirmed attempts
	EnqueuedAt       time.Time `gorm:"not null"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func NewFailureRecord(id string, c claim.Claim) FailureRecord {
	return FailureRecord{
		ID:               id,
		ClaimID:          c.ID,
		UserKey:          c.UserKey,
		RecipientAddress: c.RecipientAddress,
		EventID:          c.EventID,
		Source:           c.Source,
		Metadata:         c.Metadata,
		EnqueuedAt:       c.EnqueuedAt,
	}
}

func (r FailureRecord) Claim() claim.Claim {
	return claim.Claim{
		ID:               r.ClaimID,
		UserKey:          r.UserKey,
		RecipientAddress: r.RecipientAddress,
		EventID:          r.EventID,
		Source:           r.Source,
		EnqueuedAt:       r.EnqueuedAt,
		Metadata:         r.Metadata,
	}
}

func NewLedgerEntry(c claim.Claim, txHash string, success bool, errMsg string) LedgerEntry {
	entry := LedgerEntry{
		UserKey:          c.UserKey,
		EventID:          c.EventID,
		ClaimID:          c.ID,
		RecipientAddress: c.RecipientAddress,
		Source:           c.Source,
		Success:          success,
		Error:            errMsg,
	}
	if txHash != "" {
		entry.TxHash = &txHash
	}
	return entry
}
