//go:build gui

package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/naz755/warp-reader/internal/extract"
	"github.com/naz755/warp-reader/internal/reading"
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

// themeColors holds the word colors for one theme.
type themeColors struct {
	word  color.Color
	pivot color.Color
}

func colorsFor(theme session.Theme) themeColors {
	switch theme {
	case session.ThemeCyber:
		return themeColors{
			word:  color.RGBA{R: 0, G: 255, B: 102, A: 255},
			pivot: color.RGBA{R: 0, G: 255, B: 209, A: 255},
		}
	case session.ThemeMono:
		return themeColors{
			word:  color.White,
			pivot: color.RGBA{R: 170, G: 170, B: 170, A: 255},
		}
	default:
		return themeColors{
			word:  color.White,
			pivot: color.RGBA{R: 255, G: 0, B: 0, A: 255},
		}
	}
}

func createWordDisplay(split reading.PivotSplit, colors themeColors, fontSize float32, windowWidth float32) *fyne.Container {
	beforeText := canvas.NewText(split.Left, colors.word)
	beforeText.TextSize = fontSize
	beforeText.TextStyle.Bold = true

	pivotText := canvas.NewText(split.Pivot, colors.pivot)
	pivotText.TextSize = fontSize
	pivotText.TextStyle.Bold = true

	afterText := canvas.NewText(split.Right, colors.word)
	afterText.TextSize = fontSize
	afterText.TextStyle.Bold = true

	beforeSize := beforeText.MinSize()
	pivotSize := pivotText.MinSize()

	// Horizontal: anchor the pivot letter at center
	centerX := windowWidth / 2
	beforeX := centerX - beforeSize.Width
	pivotX := centerX
	afterX := centerX + pivotSize.Width

	if beforeX < 0 {
		beforeX = 0
	}

	c := &fyne.Container{
		Layout: &centerVerticalLayout{},
		Objects: []fyne.CanvasObject{
			beforeText,
			pivotText,
			afterText,
		},
	}

	beforeText.Move(fyne.NewPos(beforeX, 0))
	pivotText.Move(fyne.NewPos(pivotX, 0))
	afterText.Move(fyne.NewPos(afterX, 0))

	return c
}

type centerVerticalLayout struct{}

func (l *centerVerticalLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var maxH float32
	for _, o := range objects {
		size := o.MinSize()
		if size.Height > maxH {
			maxH = size.Height
		}
	}
	return fyne.NewSize(0, maxH)
}

func (l *centerVerticalLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var maxH float32
	for _, o := range objects {
		objSize := o.MinSize()
		if objSize.Height > maxH {
			maxH = objSize.Height
		}
	}

	y := (size.Height - maxH) / 2
	if y < 0 {
		y = 0
	}

	for _, o := range objects {
		pos := o.Position()
		o.Move(fyne.NewPos(pos.X, y))
		o.Resize(o.MinSize())
	}
}

func main() {
	wpm := flag.Int("w", 300, "Words per minute (100-1000)")
	themeName := flag.String("theme", "default", "Color theme: default, cyber, or mono")
	showVersion := flag.Bool("v", false, "Show version information")
	showVersionLong := flag.Bool("version", false, "Show version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Warp - GUI Speed Reading Tool\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  warp [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  warp file.txt             Read from file at 300 WPM\n")
		fmt.Fprintf(os.Stderr, "  warp -w 500 paper.pdf     Read a PDF at 500 WPM\n")
		fmt.Fprintf(os.Stderr, "  cat file.txt | warp       Read from stdin\n")
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

	rate := *wpm
	if rate < minWPM {
		rate = minWPM
	}
	if rate > maxWPM {
		rate = maxWPM
	}

	ctrl := session.New(extract.Text, wakelock.New(), nil)
	ctrl.SetTheme(theme)
	ctrl.SetRate(rate)

	if flag.NArg() > 0 {
		if err := ctrl.LoadFile(flag.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Error: No input provided. Provide a file or pipe text to stdin.")
			fmt.Fprintln(os.Stderr, "Try: warp -h")
			os.Exit(1)
		}

		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		ctrl.LoadText(string(data))
	}

	a := app.New()
	w := a.NewWindow("warp - Speed Reader")

	fontSize := float32(72)

	snap := ctrl.Snapshot()
	statusLabel := widget.NewLabel(fmt.Sprintf("Word %d/%d | %d WPM | Font: %.0f [PAUSED]",
		snap.Index+1, snap.Total, snap.Rate, fontSize))
	statusLabel.Alignment = fyne.TextAlignCenter

	controlsLabel := widget.NewLabel("SPACE: play/pause  ↑/↓: speed  B: back 10  R: restart  T: theme  F: fullscreen  Q: quit")
	controlsLabel.Alignment = fyne.TextAlignCenter

	wordContainer := container.NewMax()

	mainContainer := container.NewBorder(
		statusLabel,
		controlsLabel,
		nil, nil,
		wordContainer,
	)

	updateDisplay := func() {
		snap := ctrl.Snapshot()

		canvasWidth := w.Canvas().Size().Width
		if canvasWidth <= 0 {
			canvasWidth = 800
		}

		display := createWordDisplay(snap.Split, colorsFor(snap.Theme), fontSize, canvasWidth)
		wordContainer.Objects = []fyne.CanvasObject{display}
		wordContainer.Refresh()

		marker := ""
		switch {
		case snap.Finished:
			marker = " [DONE]"
		case !snap.Playing:
			marker = " [PAUSED]"
		}
		statusLabel.SetText(fmt.Sprintf("Word %d/%d | %d WPM | Font: %.0f%s",
			snap.Index+1, snap.Total, snap.Rate, fontSize, marker))
	}

	// One outstanding tick at a time. A tick armed before any transition
	// carries a stale generation and dies inside Tick.
	var armTick func()
	armTick = func() {
		gen := ctrl.Generation()
		time.AfterFunc(ctrl.Interval(), func() {
			rearm := ctrl.Tick(gen)
			fyne.Do(updateDisplay)
			if rearm {
				armTick()
			}
		})
	}

	w.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		switch key.Name {
		case fyne.KeySpace:
			if ctrl.Toggle() {
				armTick()
			}
			updateDisplay()

		case fyne.KeyUp:
			if rate := ctrl.Snapshot().Rate; rate < maxWPM {
				ctrl.SetRate(rate + wpmStep)
				updateDisplay()
			}

		case fyne.KeyDown:
			if rate := ctrl.Snapshot().Rate; rate > minWPM {
				ctrl.SetRate(rate - wpmStep)
				updateDisplay()
			}

		case fyne.KeyF:
			w.SetFullScreen(!w.FullScreen())

		case fyne.KeyQ:
			a.Quit()
		}
	})

	w.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case 'b', 'B':
			ctrl.SeekBack(10)
			updateDisplay()

		case 'r', 'R':
			ctrl.Restart()
			updateDisplay()

		case 't', 'T':
			ctrl.CycleTheme()
			updateDisplay()

		case '+', '=':
			if fontSize < 200 {
				fontSize += 5
				updateDisplay()
			}
		case '-':
			if fontSize > 20 {
				fontSize -= 5
				updateDisplay()
			}
		}
	})

	w.Resize(fyne.NewSize(800, 600))
	w.SetContent(mainContainer)

	// Pause and redraw when the window width changes.
	done := make(chan struct{})
	var lastWidth float32 = 800
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				time.Sleep(100 * time.Millisecond)
				currentWidth := w.Canvas().Size().Width
				if currentWidth > 0 && currentWidth != lastWidth {
					lastWidth = currentWidth
					ctrl.Pause()
					fyne.Do(updateDisplay)
				}
			}
		}
	}()

	w.SetOnClosed(func() {
		close(done)
	})

	// Initialize first word after window shows
	go func() {
		time.Sleep(100 * time.Millisecond)
		fyne.Do(updateDisplay)
	}()

	w.ShowAndRun()
}
