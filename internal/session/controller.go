// Package session orchestrates a reading session: it wires text and file
// input into the playback engine, applies wake-lock side effects around
// playback, and exposes a read-only snapshot for a presentation layer.
package session

import (
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/naz755/warp-reader/internal/extract"
	"github.com/naz755/warp-reader/internal/reading"
	"github.com/naz755/warp-reader/internal/wakelock"
)

// ExtractFunc turns a file into plain text. extract.Text is the production
// implementation; tests substitute fakes.
type ExtractFunc func(filename string) (string, error)

// Snapshot is the read-only view of a session handed to a presentation
// layer after every state change. It is recomputed per call and holds no
// references into the session.
type Snapshot struct {
	Word     string
	Split    reading.PivotSplit
	Index    int
	Total    int
	Playing  bool
	Ready    bool
	Finished bool
	Rate     int
	Theme    Theme
	FileName string
}

// Controller owns the engine, the wake-lock capability, and the session
// metadata (draft text, source file name, theme). All methods serialize
// through one mutex so a ticker goroutine and an event handler can never
// interleave a transition.
type Controller struct {
	mu      sync.Mutex
	engine  *reading.Engine
	extract ExtractFunc
	wake    wakelock.Capability
	log     *log.Logger

	fileName string
	draft    string
	dirty    bool
	theme    Theme
}

// New creates a session controller. A nil extractor defaults to the format
// registry, a nil capability to the no-op lock, and a nil logger discards;
// capability failures are logged, never returned.
func New(extractFn ExtractFunc, wake wakelock.Capability, logger *log.Logger) *Controller {
	if extractFn == nil {
		extractFn = extract.Text
	}
	if wake == nil {
		wake = wakelock.Noop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		engine:  reading.NewEngine(),
		extract: extractFn,
		wake:    wake,
		log:     logger,
	}
}

// SetDraft records edited raw text without tokenizing it. Editing marks
// the session not ready until the draft is explicitly loaded.
func (c *Controller) SetDraft(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = text
	c.dirty = true
}

// Draft returns the raw text under edit.
func (c *Controller) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// LoadDraft tokenizes the current draft into a fresh word sequence. The
// session ends up paused at the first word, ready to play.
func (c *Controller) LoadDraft() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadLocked(c.draft, "")
}

// LoadText tokenizes the given text, replacing both the draft and the word
// sequence.
func (c *Controller) LoadText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = text
	c.loadLocked(text, "")
}

// LoadFile extracts text from a file and loads it. On extraction failure
// the error is returned and the session keeps its prior sequence, cursor,
// and status untouched.
func (c *Controller) LoadFile(filename string) error {
	text, err := c.extract(filename)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = text
	c.loadLocked(text, filepath.Base(filename))
	return nil
}

func (c *Controller) loadLocked(text, fileName string) {
	c.releaseWakeLocked()
	c.engine.Load(text)
	c.fileName = fileName
	c.dirty = false
}

// Clear resets the session to its initial state: placeholder sequence,
// empty draft, no file name.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.releaseWakeLocked()
	c.engine.Clear()
	c.fileName = ""
	c.draft = ""
	c.dirty = false
}

// Play starts playback and requests the wake lock. It reports whether the
// caller must arm a tick for Generation() after Interval().
func (c *Controller) Play() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.Play()
	c.acquireWakeLocked()
	return true
}

// Pause stops playback and releases the wake lock.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.Pause()
	c.releaseWakeLocked()
}

// Toggle pauses when playing, plays otherwise, and reports whether the
// session is playing afterwards.
func (c *Controller) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.engine.Status() == reading.Playing {
		c.engine.Pause()
		c.releaseWakeLocked()
		return false
	}
	c.engine.Play()
	c.acquireWakeLocked()
	return true
}

// Restart rewinds to the first word and stops.
func (c *Controller) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.Restart()
	c.releaseWakeLocked()
}

// SeekBack moves the cursor back n words, clamped at the first word, and
// stops playback.
func (c *Controller) SeekBack(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.SeekBack(n)
	c.releaseWakeLocked()
}

// SetRate updates the words-per-minute rate.
func (c *Controller) SetRate(wpm int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.SetRate(wpm)
}

// Tick forwards a fired timer to the engine and reports whether the next
// tick must be armed. When the sequence finishes, the wake lock is
// released.
func (c *Controller) Tick(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	rearm := c.engine.Tick(gen)
	if c.engine.Status() == reading.Finished {
		c.releaseWakeLocked()
	}
	return rearm
}

// SetTheme sets the cosmetic theme.
func (c *Controller) SetTheme(t Theme) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.theme = t
}

// CycleTheme advances to the next theme and returns it.
func (c *Controller) CycleTheme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.theme = c.theme.Next()
	return c.theme
}

// Generation identifies the currently armed scheduling epoch.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Generation()
}

// Interval returns the delay before the next tick at the current rate.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Interval()
}

// Snapshot returns the current read-only view of the session.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	word := c.engine.CurrentWord()
	return Snapshot{
		Word:     word,
		Split:    reading.SplitPivot(word),
		Index:    c.engine.Position(),
		Total:    c.engine.Len(),
		Playing:  c.engine.Status() == reading.Playing,
		Ready:    c.engine.Ready() && !c.dirty,
		Finished: c.engine.Status() == reading.Finished,
		Rate:     c.engine.Rate(),
		Theme:    c.theme,
		FileName: c.fileName,
	}
}

func (c *Controller) acquireWakeLocked() {
	if !c.wake.Acquire() {
		c.log.Debug("wake lock not acquired", "supported", c.wake.Supported())
	}
}

func (c *Controller) releaseWakeLocked() {
	if c.wake.Active() {
		c.wake.Release()
	}
}
