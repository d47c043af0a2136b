package reading

import (
	"testing"
	"time"
)

func TestIntervalMillis(t *testing.T) {
	tests := []struct {
		wpm      int
		expected float64
	}{
		{300, 200.0},
		{600, 100.0},
		{100, 600.0},
		{1000, 60.0},
	}

	for _, tt := range tests {
		if got := IntervalMillis(tt.wpm); got != tt.expected {
			t.Errorf("IntervalMillis(%d) = %v, want %v", tt.wpm, got, tt.expected)
		}
	}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		wpm      int
		expected time.Duration
	}{
		{300, 200 * time.Millisecond},
		{600, 100 * time.Millisecond},
		{900, 66666666 * time.Nanosecond}, // ~66.67ms
	}

	for _, tt := range tests {
		got := Interval(tt.wpm)
		diff := got - tt.expected
		if diff < 0 {
			diff = -diff
		}
		if diff > time.Millisecond {
			t.Errorf("Interval(%d) = %v, want ~%v", tt.wpm, got, tt.expected)
		}
	}
}
