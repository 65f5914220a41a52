package safespawn

import "context"

// Handle tracks completion of one launch.
//
// It carries no result value: contained faults are delivered to the launch
// handler, never through the handle.
type Handle struct {
	done chan struct{}
}

// newHandle creates a handle whose done channel the launch goroutine closes
// once its full work/handler/finalizer sequence has finished.
func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// Wait blocks until the launch sequence finishes or ctx is done, returning
// ctx.Err() in the latter case and nil otherwise. Waiting never reports a
// contained fault, and abandoning the wait does not interrupt a launch in
// flight.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel closed once the launch sequence has finished.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
