//go:build !linux

package wakelock

// New returns the platform keep-awake capability. No inhibitor is wired on
// this platform, so playback proceeds without one.
func New() Capability {
	return Noop{}
}
