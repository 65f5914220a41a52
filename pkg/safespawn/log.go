package safespawn

import "log/slog"

// LogHandler builds a Handler that records contained fault messages through
// logger at error level, tagged with scope. A nil logger falls back to
// slog.Default().
//
// The launchers never log on their own; wiring a handler such as this one is
// how a caller opts into fault visibility.
func LogHandler(logger *slog.Logger, scope string) Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(message string) {
		logger.Error("panic contained", "scope", scope, "fault", message)
	}
}
