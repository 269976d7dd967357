package clock

import (
	"time"

	"boxertrucks/internal/usecase/interfaces"
)

// SystemTimeProvider reads the wall clock in UTC.
type SystemTimeProvider struct{}

var _ interfaces.ITimeProvider = SystemTimeProvider{}

func (SystemTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
