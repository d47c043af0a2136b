package reading

import "testing"

func TestNewEngine(t *testing.T) {
	e := NewEngine()
	if e.Status() != Idle {
		t.Errorf("new engine status = %v, want idle", e.Status())
	}
	if e.Rate() != DefaultRate {
		t.Errorf("new engine rate = %d, want %d", e.Rate(), DefaultRate)
	}
	if e.Len() == 0 {
		t.Error("new engine must hold a non-empty placeholder sequence")
	}
	if e.Position() != 0 {
		t.Errorf("new engine position = %d, want 0", e.Position())
	}
	if e.Ready() {
		t.Error("new engine must not be ready before a load")
	}
}

func TestLoad(t *testing.T) {
	t.Run("whitespace-heavy text", func(t *testing.T) {
		e := NewEngine()
		e.Load("  hello   world  ")
		if e.Len() != 2 || e.CurrentWord() != "hello" {
			t.Errorf("got %d words, current %q", e.Len(), e.CurrentWord())
		}
		if e.Status() != Paused {
			t.Errorf("status after load = %v, want paused", e.Status())
		}
		if !e.Ready() {
			t.Error("engine must be ready after load")
		}
	})

	t.Run("empty text substitutes fallback", func(t *testing.T) {
		e := NewEngine()
		e.Load("")
		want := []string{"ready", "to", "warp"}
		if e.Len() != len(want) {
			t.Fatalf("fallback length = %d, want %d", e.Len(), len(want))
		}
		for i, w := range want {
			e.position = i
			if e.CurrentWord() != w {
				t.Errorf("fallback[%d] = %q, want %q", i, e.CurrentWord(), w)
			}
		}
		if !e.Ready() {
			t.Error("engine must be ready even on fallback load")
		}
	})

	t.Run("load cancels armed tick", func(t *testing.T) {
		e := NewEngine()
		e.Load("one two three")
		e.Play()
		gen := e.Generation()
		e.Load("four five")
		if e.Tick(gen) {
			t.Error("tick armed before load must be a stale no-op")
		}
		if e.Position() != 0 {
			t.Errorf("stale tick moved position to %d", e.Position())
		}
	})
}

func TestClear(t *testing.T) {
	e := NewEngine()
	e.Load("some text here")
	e.Play()
	e.Clear()
	if e.Status() != Idle {
		t.Errorf("status after clear = %v, want idle", e.Status())
	}
	if e.Position() != 0 {
		t.Errorf("position after clear = %d, want 0", e.Position())
	}
	if e.Len() == 0 {
		t.Error("clear must restore the placeholder, not an empty sequence")
	}
}

func TestPlaybackRunToFinish(t *testing.T) {
	e := NewEngine()
	e.Load("hello world")
	e.SetRate(600)

	e.Play()
	if e.Status() != Playing {
		t.Fatalf("status after play = %v, want playing", e.Status())
	}

	// First tick: advance to the last word, keep playing.
	if !e.Tick(e.Generation()) {
		t.Fatal("first tick must request a re-arm")
	}
	if e.Position() != 1 || e.Status() != Playing {
		t.Fatalf("after first tick: position=%d status=%v", e.Position(), e.Status())
	}

	// Second tick: clamp at the last word and finish.
	if e.Tick(e.Generation()) {
		t.Fatal("final tick must not request a re-arm")
	}
	if e.Status() != Finished {
		t.Errorf("status after final tick = %v, want finished", e.Status())
	}
	if e.Position() != 1 {
		t.Errorf("position after finish = %d, want last index 1", e.Position())
	}
}

func TestPlaySingleWordFinishesImmediately(t *testing.T) {
	e := NewEngine()
	e.Load("solo")
	e.Play()
	if e.Tick(e.Generation()) {
		t.Error("single-word tick must not re-arm")
	}
	if e.Status() != Finished || e.Position() != 0 {
		t.Errorf("got status=%v position=%d, want finished at 0", e.Status(), e.Position())
	}
}

func TestPlayAfterFinishRestarts(t *testing.T) {
	e := NewEngine()
	e.Load("one two")
	e.Play()
	e.Tick(e.Generation())
	e.Tick(e.Generation())
	if e.Status() != Finished {
		t.Fatalf("setup: status = %v, want finished", e.Status())
	}

	e.Play()
	if e.Position() != 0 {
		t.Errorf("replay position = %d, want 0", e.Position())
	}
	if e.Status() != Playing {
		t.Errorf("replay status = %v, want playing", e.Status())
	}
}

func TestPause(t *testing.T) {
	t.Run("while playing", func(t *testing.T) {
		e := NewEngine()
		e.Load("one two three")
		e.Play()
		gen := e.Generation()
		e.Pause()
		if e.Status() != Paused {
			t.Errorf("status = %v, want paused", e.Status())
		}
		if e.Tick(gen) {
			t.Error("tick queued before pause must be a stale no-op")
		}
	})

	t.Run("while idle is a no-op", func(t *testing.T) {
		e := NewEngine()
		e.Pause()
		if e.Status() != Idle {
			t.Errorf("pause while idle changed status to %v", e.Status())
		}
	})

	t.Run("while finished keeps finished", func(t *testing.T) {
		e := NewEngine()
		e.Load("solo")
		e.Play()
		e.Tick(e.Generation())
		e.Pause()
		if e.Status() != Finished {
			t.Errorf("pause after finish changed status to %v", e.Status())
		}
	})
}

func TestToggle(t *testing.T) {
	e := NewEngine()
	e.Load("one two three")
	if !e.Toggle() {
		t.Error("toggle from paused must start playing")
	}
	if e.Status() != Playing {
		t.Errorf("status = %v, want playing", e.Status())
	}
	if e.Toggle() {
		t.Error("toggle from playing must pause")
	}
	if e.Status() != Paused {
		t.Errorf("status = %v, want paused", e.Status())
	}
}

func TestRestart(t *testing.T) {
	e := NewEngine()
	e.Load("one two three four")
	e.Play()
	e.Tick(e.Generation())
	gen := e.Generation()

	e.Restart()
	if e.Position() != 0 {
		t.Errorf("position = %d, want 0", e.Position())
	}
	if e.Status() != Paused {
		t.Errorf("restart while playing must end paused, got %v", e.Status())
	}
	if e.Tick(gen) {
		t.Error("tick queued before restart must be a stale no-op")
	}
}

func TestSeekBack(t *testing.T) {
	t.Run("clamps at zero", func(t *testing.T) {
		e := NewEngine()
		e.Load("a b c d e")
		e.Play()
		e.Tick(e.Generation())
		e.Tick(e.Generation())
		e.Tick(e.Generation())
		if e.Position() != 3 {
			t.Fatalf("setup: position = %d, want 3", e.Position())
		}
		e.SeekBack(10)
		if e.Position() != 0 {
			t.Errorf("position = %d, want 0", e.Position())
		}
		if e.Status() != Paused {
			t.Errorf("seek must stop playback, got %v", e.Status())
		}
	})

	t.Run("clears finished", func(t *testing.T) {
		e := NewEngine()
		e.Load("one two")
		e.Play()
		e.Tick(e.Generation())
		e.Tick(e.Generation())
		e.SeekBack(1)
		if e.Status() != Paused {
			t.Errorf("seek back must clear finished, got %v", e.Status())
		}
		if e.Position() != 0 {
			t.Errorf("position = %d, want 0", e.Position())
		}
	})
}

func TestSetRate(t *testing.T) {
	e := NewEngine()
	e.Load("one two three")
	e.SetRate(600)
	if e.Rate() != 600 {
		t.Errorf("rate = %d, want 600", e.Rate())
	}
	if got := e.Interval().Milliseconds(); got != 100 {
		t.Errorf("interval = %dms, want 100ms", got)
	}

	// Rate changes while paused have no scheduling effect.
	if e.Status() != Paused {
		t.Errorf("setRate changed status to %v", e.Status())
	}

	// While playing, the generation is untouched so the in-flight tick
	// still counts; only its re-arm delay changes.
	e.Play()
	gen := e.Generation()
	e.SetRate(300)
	if e.Generation() != gen {
		t.Error("setRate must not cancel the armed tick")
	}
	if !e.Tick(gen) {
		t.Error("tick after setRate must still advance")
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Idle, "idle"},
		{Playing, "playing"},
		{Paused, "paused"},
		{Finished, "finished"},
		{Status(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}
