package recovery

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidBackoff = errors.New("invalid backoff table")

// Backoff is the attempt-indexed delay table of the retry ladder.
type Backoff struct {
	delays []time.Duration
}

func NewBackoff(delays []time.Duration) (Backoff, error) {
	if len(delays) == 0 {
		return Backoff{}, fmt.Errorf("%w: empty", ErrInvalidBackoff)
	}
	for i, d := range delays {
		if d <= 0 {
			return Backoff{}, fmt.Errorf("%w: delay %d is %s", ErrInvalidBackoff, i, d)
		}
		if i > 0 && d < delays[i-1] {
			return Backoff{}, fmt.Errorf("%w: delay %d (%s) is shorter than delay %d (%s)", ErrInvalidBackoff, i, d, i-1, delays[i-1])
		}
	}
	return Backoff{delays: append([]time.Duration(nil), delays...)}, nil
}

func FastSchedule() Backoff {
	return Backoff{delays: []time.Duration{2 * time.Minute, 5 * time.Minute, 10 * time.Minute, 20 * time.Minute}}
}

func SlowSchedule() Backoff {
	return Backoff{delays: []time.Duration{20 * time.Minute, 40 * time.Minute, 60 * time.Minute, 120 * time.Minute}}
}

// Next returns the delay before retry number attempt+1. ok is false once the
// table is exhausted.
func (b Backoff) Next(attempt int) (time.Duration, bool) {
	if attempt < 0 || attempt >= len(b.delays) {
		return 0, false
	}
	return b.delays[attempt], true
}

func (b Backoff) Len() int {
	return len(b.delays)
}
