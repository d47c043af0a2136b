package reading

import "time"

// Status is the playback state of an Engine.
type Status int

const (
	// Idle means no user text has been loaded; the placeholder sequence
	// is showing.
	Idle Status = iota
	// Playing means the scheduler is armed and words are advancing.
	Playing
	// Paused means a sequence is loaded but not advancing.
	Paused
	// Finished means the end of the sequence was reached naturally.
	Finished
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// DefaultRate is the starting words-per-minute rate.
const DefaultRate = 300

var (
	placeholderWords = []string{"welcome", "to", "warp", "reader"}
	fallbackWords    = []string{"ready", "to", "warp"}
)

// Engine is the RSVP playback state machine. It holds the word sequence,
// the cursor, the status, and the rate, and exposes transitions. The engine
// never owns a timer: a front end arms one tick at a time, tagged with the
// engine's generation, and calls Tick when it fires. Every transition that
// cancels scheduling bumps the generation, so a tick queued before the
// transition fires as a no-op.
//
// The word sequence is never empty. Before any load it is a fixed
// placeholder; a load that tokenizes to nothing substitutes a fallback
// phrase instead of an empty sequence.
//
// Engine methods are not safe for concurrent use; callers serialize access
// (the bubbletea update loop does so by construction, the session
// controller does so with a mutex).
type Engine struct {
	words    []string
	position int
	status   Status
	rate     int
	gen      uint64
}

// NewEngine returns an idle engine showing the placeholder sequence.
func NewEngine() *Engine {
	return &Engine{
		words: placeholderWords,
		rate:  DefaultRate,
	}
}

// Load tokenizes text and replaces the word sequence with the result,
// substituting the fallback phrase when tokenization yields nothing. The
// cursor resets to 0 and the engine ends up Paused, ready to play but not
// playing. Any armed tick is cancelled.
func (e *Engine) Load(text string) {
	words := Tokenize(text)
	if len(words) == 0 {
		words = fallbackWords
	}
	e.words = words
	e.position = 0
	e.status = Paused
	e.gen++
}

// Clear resets the engine to its initial idle state with the placeholder
// sequence. Any armed tick is cancelled.
func (e *Engine) Clear() {
	e.words = placeholderWords
	e.position = 0
	e.status = Idle
	e.gen++
}

// Play starts playback. If the cursor is on the last word it rewinds to the
// start first, so playing after a finish replays the sequence. The caller
// must arm a tick for Generation() after Interval().
func (e *Engine) Play() {
	if e.position >= len(e.words)-1 {
		e.position = 0
	}
	e.status = Playing
	e.gen++
}

// Pause stops playback and cancels any armed tick. Pausing an idle or
// finished engine leaves its status alone.
func (e *Engine) Pause() {
	e.gen++
	if e.status == Playing {
		e.status = Paused
	}
}

// Toggle pauses when playing, plays otherwise. It reports whether the
// engine is playing afterwards, i.e. whether the caller must arm a tick.
func (e *Engine) Toggle() bool {
	if e.status == Playing {
		e.Pause()
		return false
	}
	e.Play()
	return true
}

// Restart rewinds to the first word and stops. A playing or finished
// engine ends up Paused; an idle engine stays Idle.
func (e *Engine) Restart() {
	e.gen++
	e.position = 0
	if e.status == Playing || e.status == Finished {
		e.status = Paused
	}
}

// SeekBack moves the cursor back n words, clamped at the first word, and
// stops playback the same way Restart does. Seeking while advancing is
// ambiguous, so seeking always stops.
func (e *Engine) SeekBack(n int) {
	e.gen++
	e.position -= n
	if e.position < 0 {
		e.position = 0
	}
	if e.status == Playing || e.status == Finished {
		e.status = Paused
	}
}

// SetRate updates the words-per-minute rate. A tick already in flight keeps
// its old delay; the next re-arm picks up the new interval. The engine
// accepts any positive rate; range enforcement belongs to the input
// boundary.
func (e *Engine) SetRate(wpm int) {
	e.rate = wpm
}

// Tick advances the cursor by one word. It is a no-op returning false when
// gen is stale or the engine is not playing. Reaching past the last word
// clamps the cursor there and finishes. The return value reports whether
// the caller must arm the next tick.
func (e *Engine) Tick(gen uint64) bool {
	if gen != e.gen || e.status != Playing {
		return false
	}
	if e.position+1 >= len(e.words) {
		e.position = len(e.words) - 1
		e.status = Finished
		e.gen++
		return false
	}
	e.position++
	return true
}

// Generation identifies the currently armed scheduling epoch. A tick must
// carry the generation current at arming time.
func (e *Engine) Generation() uint64 { return e.gen }

// Interval returns the delay before the next tick at the current rate.
func (e *Engine) Interval() time.Duration { return Interval(e.rate) }

// Status returns the playback status.
func (e *Engine) Status() Status { return e.status }

// Rate returns the words-per-minute rate.
func (e *Engine) Rate() int { return e.rate }

// Position returns the cursor index into the word sequence.
func (e *Engine) Position() int { return e.position }

// Len returns the number of words in the sequence.
func (e *Engine) Len() int { return len(e.words) }

// CurrentWord returns the word under the cursor.
func (e *Engine) CurrentWord() string {
	if e.position >= 0 && e.position < len(e.words) {
		return e.words[e.position]
	}
	return ""
}

// Ready reports whether user text has been loaded since the last Clear.
func (e *Engine) Ready() bool { return e.status != Idle }
