package safespawn

import (
	"fmt"
	"runtime"
)

// stackBufferSize bounds the goroutine stack captured at the recover site.
const stackBufferSize = 64 << 10

// Fault is the opaque payload captured from a contained panic.
type Fault struct {
	// Value is the value passed to panic, unmodified.
	Value any
	// Stack is the spawned goroutine stack captured at the recover site.
	// It is diagnostic surplus: normalization ignores it.
	Stack []byte
}

// newFault pairs a recovered panic value with the current goroutine stack.
// The stack must be captured here because it is gone once the containment
// frame returns.
func newFault(value any) *Fault {
	buffer := make([]byte, stackBufferSize)
	written := runtime.Stack(buffer, false)

	return &Fault{Value: value, Stack: buffer[:written]}
}

// String renders the fault payload as a human-readable message via
// FaultMessage. A nil fault renders as a fixed placeholder so String is
// total.
func (f *Fault) String() string {
	if f == nil {
		return "<nil fault>"
	}

	return FaultMessage(f.Value)
}

// FaultMessage normalizes a captured panic value to a display string.
//
// String payloads are returned verbatim, since panics conventionally carry a
// string message. Every other payload goes through a best-effort fmt render
// that cannot itself fail: when a formatting method panics, fmt substitutes
// a %!v(PANIC=...) diagnostic instead of unwinding.
func FaultMessage(value any) string {
	if message, ok := value.(string); ok {
		return message
	}

	return fmt.Sprintf("%v", value)
}
