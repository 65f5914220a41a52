package safespawn

// Run invokes work exactly once inside a containment frame.
//
// It returns nil when work completes normally, and a Fault carrying the
// recovered payload when work panics. The panic never propagates past this
// frame. Note that panic(nil) still reports as a fault: recover observes a
// *runtime.PanicNilError rather than nil.
func Run(work Work) (fault *Fault) {
	defer func() {
		if recovered := recover(); recovered != nil {
			fault = newFault(recovered)
		}
	}()

	work()

	return nil
}

// RunHandler invokes handler with message under the same containment
// discipline as Run.
func RunHandler(handler Handler, message string) (fault *Fault) {
	defer func() {
		if recovered := recover(); recovered != nil {
			fault = newFault(recovered)
		}
	}()

	handler(message)

	return nil
}
