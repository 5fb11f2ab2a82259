package recovery

import (
	"errors"
	"fmt"
	"slices"

	"payoutd/internal/repository"
)

var ErrIllegalTransition = errors.New("illegal status transition")

type Status string

const (
	StatusPending            Status = "pending"
	StatusProcessing         Status = "processing"
	StatusRetryScheduled     Status = "retry_scheduled"
	StatusFailed             Status = "failed"
	StatusMaxRetriesExceeded Status = "max_retries_exceeded"
	StatusSuccess            Status = "success"
	StatusAlreadyClaimed     Status = "already_claimed"
)

// pending records are created by the inline path, which either schedules
// the first retry or gives up straight away.
var transitions = map[Status][]Status{
	StatusPending: {StatusProcessing, StatusRetryScheduled, StatusFailed, StatusMaxRetriesExceeded},
	StatusProcessing: {
		StatusSuccess,
		StatusRetryScheduled,
		StatusMaxRetriesExceeded,
		StatusFailed,
		StatusAlreadyClaimed,
	},
	StatusRetryScheduled: {StatusProcessing},
}

func (s Status) CanTransition(to Status) bool {
	return slices.Contains(transitions[s], to)
}

// Terminal statuses accept no further transitions.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// Transition moves the record to status to, or fails without touching it.
func Transition(rec *repository.FailureRecord, to Status) error {
	from := Status(rec.Status)
	if !from.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s (record %s)", ErrIllegalTransition, from, to, rec.ID)
	}
	rec.Status = string(to)
	return nil
}
