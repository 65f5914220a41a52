package safespawn

// Work is a zero-argument unit of work suitable for launching on its own
// goroutine. Any func() qualifies: the contract is structural, there is no
// registration step.
//
// A Work value must be safe to invoke from a goroutine other than the one
// that created it, and must not depend on state the caller invalidates
// before the launch completes. Access to data shared with other goroutines
// is the caller's responsibility to synchronize.
type Work func()

// Handler is a one-argument callable that receives the normalized message of
// a contained fault. It carries the same transfer and lifetime obligations
// as Work.
//
// A Handler runs at most once per launch, and only when the primary Work
// faulted.
type Handler func(message string)
