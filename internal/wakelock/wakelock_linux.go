//go:build linux

package wakelock

import (
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	screenSaverName = "org.freedesktop.ScreenSaver"
	screenSaverPath = "/org/freedesktop/ScreenSaver"
)

// screenSaverLock inhibits the freedesktop screen saver over the session
// bus while held.
type screenSaverLock struct {
	conn *dbus.Conn

	mu     sync.Mutex
	cookie uint32
	active bool
}

// New returns the platform keep-awake capability. When no session bus is
// reachable (headless, no desktop), it returns the unsupported no-op.
func New() Capability {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Noop{}
	}
	return &screenSaverLock{conn: conn}
}

func (l *screenSaverLock) Acquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.active {
		return true
	}

	obj := l.conn.Object(screenSaverName, screenSaverPath)
	call := obj.Call(screenSaverName+".Inhibit", 0, "warp-reader", "speed reading in progress")
	if call.Err != nil {
		return false
	}
	if err := call.Store(&l.cookie); err != nil {
		return false
	}
	l.active = true
	return true
}

func (l *screenSaverLock) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.active {
		return
	}
	obj := l.conn.Object(screenSaverName, screenSaverPath)
	obj.Call(screenSaverName+".UnInhibit", 0, l.cookie)
	l.active = false
	l.cookie = 0
}

func (l *screenSaverLock) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

func (l *screenSaverLock) Supported() bool { return true }
