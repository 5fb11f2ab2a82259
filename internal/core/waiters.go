package core

import (
	"sync"

	"payoutd/internal/claim"
)

// Waiters holds the in-process callers waiting for a claim outcome. It only
// shortens the answer path for claims enqueued on this instance.
type Waiters struct {
	mu    sync.Mutex
	chans map[string]chan claim.PayoutResult
}

func NewWaiters() *Waiters {
	return &Waiters{
		chans: make(map[string]chan claim.PayoutResult),
	}
}

func (w *Waiters) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.chans)
}

func (w *Waiters) add(claimID string) <-chan claim.PayoutResult {
	ch := make(chan claim.PayoutResult, 1)
	w.mu.Lock()
	w.chans[claimID] = ch
	w.mu.Unlock()
	return ch
}

func (w *Waiters) remove(claimID string) {
	w.mu.Lock()
	delete(w.chans, claimID)
	w.mu.Unlock()
}

// resolve hands res to the waiter of res.ClaimID, if there is one.
func (w *Waiters) resolve(res claim.PayoutResult) bool {
	w.mu.Lock()
	ch, ok := w.chans[res.ClaimID]
	delete(w.chans, res.ClaimID)
	w.mu.Unlock()

	if !ok {
		return false
	}
	ch <- res
	return true
}
