package safespawn

// Spawn runs work on a new goroutine inside a containment frame and discards
// the outcome. A panic in work terminates only that frame; the returned
// handle completes normally either way, so a join never observes the fault.
func Spawn(work Work) *Handle {
	handle := newHandle()
	go func() {
		defer close(handle.done)
		_ = Run(work)
	}()

	return handle
}

// SpawnCatch runs work on a new goroutine; when work faults, handler
// receives the normalized fault message inside its own containment frame.
// A panic in handler is contained and dropped: there is no secondary
// escalation path.
func SpawnCatch(work Work, handler Handler) *Handle {
	handle := newHandle()
	go func() {
		defer close(handle.done)
		runCatch(work, handler)
	}()

	return handle
}

// SpawnCatchFinally behaves like SpawnCatch and then unconditionally runs
// finalizer in its own containment frame: after normal completion, after a
// contained work fault, and after a handler that itself faulted. The
// finalizer outcome is discarded. The order is fixed: work, then handler
// only when work faulted, then finalizer always.
func SpawnCatchFinally(work Work, handler Handler, finalizer Work) *Handle {
	handle := newHandle()
	go func() {
		defer close(handle.done)
		defer func() { _ = Run(finalizer) }()
		runCatch(work, handler)
	}()

	return handle
}

// runCatch executes the work stage and, on fault, the handler stage. Both
// stages are contained, so runCatch itself never panics.
func runCatch(work Work, handler Handler) {
	if fault := Run(work); fault != nil {
		_ = RunHandler(handler, fault.String())
	}
}
