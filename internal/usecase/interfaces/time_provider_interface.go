package interfaces

import "time"

// ITimeProvider supplies the current instant. Lifecycle transitions never
// read the global clock directly, so completion durations are computable
// deterministically in tests.
type ITimeProvider interface {
	Now() time.Time
}
