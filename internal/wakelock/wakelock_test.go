package wakelock

import "testing"

func TestNoop(t *testing.T) {
	var c Capability = Noop{}

	if c.Supported() {
		t.Error("noop must report unsupported")
	}
	if c.Acquire() {
		t.Error("noop acquire must report false")
	}
	if c.Active() {
		t.Error("noop must never be active")
	}
	// Release with nothing held must be safe.
	c.Release()
	c.Release()
}

func TestNewNeverNil(t *testing.T) {
	c := New()
	if c == nil {
		t.Fatal("New() returned nil capability")
	}
	// Whatever the platform, release without acquire must be safe.
	c.Release()
}
