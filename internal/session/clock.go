package session

import "time"

// Clock is the monotonic time source the pacer waits on.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the real monotonic clock and blocks with time.Sleep.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks the calling goroutine for d.
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
