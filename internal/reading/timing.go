package reading

import "time"

// IntervalMillis returns the per-word display time in milliseconds for a
// words-per-minute rate. The caller guarantees wpm > 0; rate clamping
// belongs at the input boundary, not here.
func IntervalMillis(wpm int) float64 {
	return 60000.0 / float64(wpm)
}

// Interval returns the per-word display time as a duration for scheduling.
func Interval(wpm int) time.Duration {
	return time.Duration(IntervalMillis(wpm) * float64(time.Millisecond))
}
