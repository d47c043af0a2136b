//go:build !gui

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naz755/warp-reader/internal/extract"
	"github.com/naz755/warp-reader/internal/session"
	"github.com/naz755/warp-reader/internal/wakelock"
)

// Version info (injected via ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	minWPM  = 100
	maxWPM  = 1000
	wpmStep = 50
)

// styles holds the lipgloss styles for one theme.
type styles struct {
	pivot    lipgloss.Style
	word     lipgloss.Style
	status   lipgloss.Style
	controls lipgloss.Style
	paused   lipgloss.Style
	done     lipgloss.Style
	title    lipgloss.Style
}

func stylesFor(theme session.Theme) styles {
	switch theme {
	case session.ThemeCyber:
		return styles{
			pivot:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFD1")),
			word:     lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF66")),
			status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA88")).Padding(0, 1),
			controls: lipgloss.NewStyle().Foreground(lipgloss.Color("#007755")).Italic(true),
			paused:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEE00")).Bold(true),
			done:     lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFD1")).Bold(true),
			title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF66")),
		}
	case session.ThemeMono:
		return styles{
			pivot:    lipgloss.NewStyle().Bold(true).Underline(true),
			word:     lipgloss.NewStyle(),
			status:   lipgloss.NewStyle().Faint(true).Padding(0, 1),
			controls: lipgloss.NewStyle().Faint(true).Italic(true),
			paused:   lipgloss.NewStyle().Bold(true),
			done:     lipgloss.NewStyle().Bold(true),
			title:    lipgloss.NewStyle().Bold(true),
		}
	default:
		return styles{
			pivot:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000")),
			word:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
			status:   lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Padding(0, 1),
			controls: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true),
			paused:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00")).Bold(true),
			done:     lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true),
			title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")),
		}
	}
}

// screen selects which view the TUI is showing.
type screen int

const (
	screenEntry screen = iota
	screenReading
)

type model struct {
	ctrl     *session.Controller
	entry    textarea.Model
	screen   screen
	width    int
	height   int
	notice   string
	quitting bool
}

type tickMsg struct {
	gen uint64
}

func tick(m model) tea.Cmd {
	gen := m.ctrl.Generation()
	return tea.Tick(m.ctrl.Interval(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m model) Init() tea.Cmd {
	if m.screen == screenEntry {
		return textarea.Blink
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.screen == screenEntry {
			return m.updateEntry(msg)
		}
		return m.updateReading(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.entry.SetWidth(msg.Width - 4)
		m.entry.SetHeight(msg.Height - 6)
		return m, nil

	case tickMsg:
		// A tick armed before any cancelling transition carries a stale
		// generation and falls through here as a no-op.
		if m.ctrl.Tick(msg.gen) {
			return m, tick(m)
		}
		return m, nil
	}

	return m, nil
}

func (m model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "ctrl+d":
		m.ctrl.SetDraft(m.entry.Value())
		m.ctrl.LoadDraft()
		m.screen = screenReading
		m.entry.Blur()
		m.notice = ""
		return m, nil

	case "ctrl+v":
		text, err := clipboard.ReadAll()
		if err != nil {
			// Clipboard access is best-effort; fall back to typing.
			m.notice = "clipboard unavailable, paste with your terminal instead"
			return m, nil
		}
		m.entry.SetValue(m.entry.Value() + text)
		m.ctrl.SetDraft(m.entry.Value())
		m.notice = ""
		return m, nil

	case "ctrl+x":
		m.entry.Reset()
		m.ctrl.Clear()
		m.notice = ""
		return m, nil

	case "esc":
		if m.ctrl.Snapshot().Ready {
			m.screen = screenReading
			m.entry.Blur()
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	if v := m.entry.Value(); v != m.ctrl.Draft() {
		m.ctrl.SetDraft(v)
	}
	return m, cmd
}

func (m model) updateReading(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		if m.ctrl.Toggle() {
			return m, tick(m)
		}
		return m, nil

	case "up", "+", "=":
		if rate := m.ctrl.Snapshot().Rate; rate < maxWPM {
			m.ctrl.SetRate(rate + wpmStep)
		}
		return m, nil

	case "down", "-":
		if rate := m.ctrl.Snapshot().Rate; rate > minWPM {
			m.ctrl.SetRate(rate - wpmStep)
		}
		return m, nil

	case "b", "left":
		m.ctrl.SeekBack(10)
		return m, nil

	case "r":
		m.ctrl.Restart()
		return m, nil

	case "t":
		m.ctrl.CycleTheme()
		return m, nil

	case "e", "esc":
		m.ctrl.Pause()
		m.screen = screenEntry
		m.entry.SetValue(m.ctrl.Draft())
		return m, m.entry.Focus()

	case "q", "Q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if m.screen == screenEntry {
		return m.entryView()
	}
	return m.readingView()
}

func (m model) entryView() string {
	snap := m.ctrl.Snapshot()
	st := stylesFor(snap.Theme)

	var sb strings.Builder
	sb.WriteString(st.title.Render("warp - speed reader"))
	sb.WriteString("\n\n")
	sb.WriteString(m.entry.View())
	sb.WriteString("\n")

	if m.notice != "" {
		sb.WriteString(st.paused.Render(m.notice))
	}
	sb.WriteString("\n")
	sb.WriteString(st.controls.Render("ctrl+d: start reading  ctrl+v: paste  ctrl+x: clear  ctrl+c: quit"))
	return sb.String()
}

func (m model) readingView() string {
	snap := m.ctrl.Snapshot()
	st := stylesFor(snap.Theme)

	marker := ""
	switch {
	case snap.Finished:
		marker = " " + st.done.Render("[DONE]")
	case !snap.Playing:
		marker = " " + st.paused.Render("[PAUSED]")
	}

	source := ""
	if snap.FileName != "" {
		source = " | " + snap.FileName
	}

	status := st.status.Render(fmt.Sprintf("Word %d/%d | %d WPM%s%s",
		snap.Index+1, snap.Total, snap.Rate, source, marker))

	controls := st.controls.Render(
		"SPACE: play/pause  ↑/↓: speed  b: back 10  r: restart  t: theme  e: edit text  q: quit")

	word := st.word.Render(snap.Split.Left) +
		st.pivot.Render(snap.Split.Pivot) +
		st.word.Render(snap.Split.Right)

	// Reserve 2 lines: status at top, controls at bottom.
	avail := m.height - 2
	if avail < 1 {
		avail = 1
	}
	vPad := avail / 2

	var sb strings.Builder
	sb.WriteString(status)
	sb.WriteString("\n")
	for i := 0; i < vPad; i++ {
		sb.WriteString("\n")
	}
	sb.WriteString(anchorPivot(word, snap.Split.Left, m.width))
	for i := 0; i < avail-vPad; i++ {
		sb.WriteString("\n")
	}
	sb.WriteString(controls)
	return sb.String()
}

// anchorPivot pads the rendered word so its pivot letter sits at the
// horizontal center of the terminal.
func anchorPivot(rendered, left string, width int) string {
	pad := width/2 - len([]rune(left))
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + rendered
}

func newModel(ctrl *session.Controller, startReading bool) model {
	entry := textarea.New()
	entry.Placeholder = "Paste or type the text you want to speed read..."
	entry.CharLimit = 0
	entry.SetValue(ctrl.Draft())

	m := model{
		ctrl:   ctrl,
		entry:  entry,
		width:  80,
		height: 24,
	}
	if startReading {
		m.screen = screenReading
	} else {
		m.entry.Focus()
	}
	return m
}

func main() {
	wpm := flag.Int("w", 300, "Words per minute (100-1000)")
	themeName := flag.String("theme", "default", "Color theme: default, cyber, or mono")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Warp - Terminal Speed Reading Tool\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  warp [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  warp                      Open the text entry screen\n")
		fmt.Fprintf(os.Stderr, "  warp file.txt             Read a file at 300 WPM\n")
		fmt.Fprintf(os.Stderr, "  warp -w 500 paper.pdf     Read a PDF at 500 WPM\n")
		fmt.Fprintf(os.Stderr, "  cat file.txt | warp       Read from stdin\n")
		fmt.Fprintf(os.Stderr, "\nSupported formats: %s, plain text otherwise\n",
			strings.Join(extract.SupportedFormats(), ", "))
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  SPACE    Play/pause\n")
		fmt.Fprintf(os.Stderr, "  +/- ↑/↓  Adjust speed by 50 WPM\n")
		fmt.Fprintf(os.Stderr, "  b        Back 10 words\n")
		fmt.Fprintf(os.Stderr, "  r        Restart\n")
		fmt.Fprintf(os.Stderr, "  t        Cycle theme\n")
		fmt.Fprintf(os.Stderr, "  e        Edit text\n")
		fmt.Fprintf(os.Stderr, "  q        Quit\n")
	}
	flag.Parse()

	if *showVersion || *showVersionLong {
		fmt.Printf("warp %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	theme, err := session.ParseTheme(*themeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rate := clampRate(*wpm)

	ctrl := session.New(extract.Text, wakelock.New(), nil)
	ctrl.SetTheme(theme)
	ctrl.SetRate(rate)

	startReading := false
	if flag.NArg() > 0 {
		if err := ctrl.LoadFile(flag.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		startReading = true
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
				os.Exit(1)
			}
			ctrl.LoadText(string(data))
			startReading = true
		}
	}

	m := newModel(ctrl, startReading)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clampRate(wpm int) int {
	if wpm < minWPM {
		return minWPM
	}
	if wpm > maxWPM {
		return maxWPM
	}
	return wpm
}
