// Package safespawn runs units of work on dedicated goroutines behind
// containment frames: a panic raised inside the work is intercepted,
// normalized to a message, optionally routed to a caller-supplied handler,
// and never allowed to unwind past the goroutine top. It provides no
// pooling, no cancellation of spawned work, and no result propagation;
// containment and reporting are its only concerns.
package safespawn
