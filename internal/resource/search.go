package resource

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is returned to a search call that a newer call replaced.
var ErrSuperseded = errors.New("resource: search superseded by a newer request")

// SearchFunc runs one search against the backend.
type SearchFunc[R any] func(ctx context.Context, term string) (R, error)

// Searcher debounces search-as-you-type and guarantees the latest request wins:
// every call waits for the debounce delay, a newer call cancels the older one's
// context, and the result of a superseded call is never returned.
type Searcher[R any] struct {
	delay time.Duration
	fn    SearchFunc[R]

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewSearcher builds a Searcher. delay <= 0 disables the debounce wait.
func NewSearcher[R any](delay time.Duration, fn SearchFunc[R]) *Searcher[R] {
	return &Searcher[R]{delay: delay, fn: fn}
}

// Search waits out the debounce delay and then runs the search,
// unless a newer call arrives first.
func (s *Searcher[R]) Search(ctx context.Context, term string) (R, error) {
	var zero R

	// 1. --- Take a ticket and cancel whoever was running ---
	s.mu.Lock()
	s.seq++
	ticket := s.seq
	if s.cancel != nil {
		s.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	// 2. --- Debounce ---
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-runCtx.Done():
			if s.superseded(ticket) {
				return zero, ErrSuperseded
			}
			return zero, runCtx.Err()
		case <-timer.C:
		}
	}

	// 3. --- Run, then drop the answer if we were overtaken meanwhile ---
	result, err := s.fn(runCtx, term)
	if s.superseded(ticket) {
		return zero, ErrSuperseded
	}
	return result, err
}

func (s *Searcher[R]) superseded(ticket uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq != ticket
}
