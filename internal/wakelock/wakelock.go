// Package wakelock keeps the screen awake during playback. Platforms
// without a usable inhibitor get a no-op capability that reports itself
// unsupported; absence of support is never an error.
package wakelock

// Capability is a best-effort keep-awake handle. Acquire reports whether
// the lock was taken; Release is safe to call when nothing is held.
type Capability interface {
	Acquire() bool
	Release()
	Active() bool
	Supported() bool
}

// Noop is the capability used when no platform inhibitor is available.
type Noop struct{}

func (Noop) Acquire() bool   { return false }
func (Noop) Release()        {}
func (Noop) Active() bool    { return false }
func (Noop) Supported() bool { return false }
