//go:build !gui

package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naz755/warp-reader/internal/session"
)

func testModel(t *testing.T, text string) model {
	t.Helper()
	ctrl := session.New(nil, nil, nil)
	ctrl.LoadText(text)
	return newModel(ctrl, true)
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestClampRate(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{50, 100},
		{100, 100},
		{300, 300},
		{1000, 1000},
		{1500, 1000},
	}
	for _, tt := range tests {
		if got := clampRate(tt.in); got != tt.want {
			t.Errorf("clampRate(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAnchorPivot(t *testing.T) {
	got := anchorPivot("word", "wo", 80)
	if !strings.HasSuffix(got, "word") {
		t.Errorf("anchorPivot output = %q", got)
	}
	if pad := len(got) - len("word"); pad != 38 {
		t.Errorf("padding = %d, want 38", pad)
	}

	// Narrow widths never pad negatively.
	if got := anchorPivot("word", "wo", 1); got != "word" {
		t.Errorf("narrow anchorPivot = %q", got)
	}
}

func TestSpaceTogglesPlayback(t *testing.T) {
	m := testModel(t, "one two three")

	next, cmd := m.Update(keyMsg(" "))
	m = next.(model)
	if !m.ctrl.Snapshot().Playing {
		t.Fatal("space must start playback")
	}
	if cmd == nil {
		t.Fatal("starting playback must arm a tick")
	}

	next, _ = m.Update(keyMsg(" "))
	m = next.(model)
	if m.ctrl.Snapshot().Playing {
		t.Error("space must pause playback")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := testModel(t, "one two three")

	next, _ := m.Update(keyMsg(" "))
	m = next.(model)
	staleGen := m.ctrl.Generation()

	next, _ = m.Update(keyMsg(" ")) // pause cancels the armed tick
	m = next.(model)

	next, cmd := m.Update(tickMsg{gen: staleGen})
	m = next.(model)
	if cmd != nil {
		t.Error("stale tick must not re-arm")
	}
	if m.ctrl.Snapshot().Index != 0 {
		t.Errorf("stale tick advanced the cursor to %d", m.ctrl.Snapshot().Index)
	}
}

func TestRateKeysClampAtBoundary(t *testing.T) {
	m := testModel(t, "one two three")
	m.ctrl.SetRate(maxWPM)

	next, _ := m.Update(keyMsg("+"))
	m = next.(model)
	if rate := m.ctrl.Snapshot().Rate; rate != maxWPM {
		t.Errorf("rate above max: %d", rate)
	}

	m.ctrl.SetRate(minWPM)
	next, _ = m.Update(keyMsg("-"))
	m = next.(model)
	if rate := m.ctrl.Snapshot().Rate; rate != minWPM {
		t.Errorf("rate below min: %d", rate)
	}
}

func TestReadingViewShowsStatus(t *testing.T) {
	m := testModel(t, "hello world")
	m.width = 60
	m.height = 20

	view := m.View()
	if !strings.Contains(view, "Word 1/2") {
		t.Errorf("view missing progress: %q", view)
	}
	if !strings.Contains(view, "300 WPM") {
		t.Errorf("view missing rate: %q", view)
	}
	if !strings.Contains(view, "PAUSED") {
		t.Errorf("paused session must show the paused marker")
	}
}

func TestEditKeySwitchesToEntry(t *testing.T) {
	m := testModel(t, "one two three")

	next, _ := m.Update(keyMsg("e"))
	m = next.(model)
	if m.screen != screenEntry {
		t.Error("e must switch to the entry screen")
	}
	if m.ctrl.Snapshot().Playing {
		t.Error("switching to the entry screen must pause playback")
	}
}

func TestThemeKeyCyclesStyles(t *testing.T) {
	m := testModel(t, "one")
	before := m.ctrl.Snapshot().Theme

	next, _ := m.Update(keyMsg("t"))
	m = next.(model)
	after := m.ctrl.Snapshot().Theme
	if after == before {
		t.Error("t must change the theme")
	}

	// Playback state is untouched by a cosmetic change.
	snap := m.ctrl.Snapshot()
	if snap.Playing || snap.Index != 0 {
		t.Errorf("theme change disturbed playback: %+v", snap)
	}
}
