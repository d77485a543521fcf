package display

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jywlabs/specgen/internal/catalog"
	"github.com/jywlabs/specgen/internal/completeness"
)

// Progress bar characters
const (
	barFilled = "█"
	barEmpty  = "░"
	barWidth  = 20
)

// Flusher is an optional interface for writers that support flushing.
type Flusher interface {
	Sync() error
}

// Display renders the questionnaire and command output.
type Display struct {
	out       io.Writer
	spinMu    sync.Mutex
	spinning  bool
	spinStop  chan struct{}
	spinDone  chan struct{}
	spinMsg   string
	spinStart time.Time
}

// NewDisplay creates a new display writer.
func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

// flush attempts to flush the output if it supports it.
func (d *Display) flush() {
	if f, ok := d.out.(Flusher); ok {
		f.Sync()
	}
}

// StartSpinner begins the loading spinner with a message.
func (d *Display) StartSpinner(msg string) {
	d.spinMu.Lock()
	if d.spinning {
		d.spinMu.Unlock()
		return
	}
	d.spinning = true
	d.spinMsg = msg
	d.spinStart = time.Now()
	d.spinStop = make(chan struct{})
	d.spinDone = make(chan struct{})
	d.spinMu.Unlock()

	go func() {
		defer close(d.spinDone)
		frame := 0
		first := true
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-d.spinStop:
				if !first {
					// Move up and clear the spinner line
					fmt.Fprintf(d.out, "\033[1A\r\033[K")
					d.flush()
				}
				return
			case <-ticker.C:
				line := fmt.Sprintf("   %s %s (%s)", StyleAccent.Render(SpinnerFrames[frame]), d.spinMsg, formatElapsed(time.Since(d.spinStart)))
				if first {
					fmt.Fprintf(d.out, "%s\n", line)
					first = false
				} else {
					fmt.Fprintf(d.out, "\033[1A\r\033[K%s\n", line)
				}
				d.flush()
				frame = (frame + 1) % len(SpinnerFrames)
			}
		}
	}()
}

// StopSpinner stops the loading spinner.
func (d *Display) StopSpinner() {
	d.spinMu.Lock()
	if !d.spinning {
		d.spinMu.Unlock()
		return
	}
	d.spinning = false
	close(d.spinStop)
	d.spinMu.Unlock()
	<-d.spinDone
}

// ShowHeader prints a command title with an optional subtitle.
func (d *Display) ShowHeader(title, subtitle string) {
	fmt.Fprintln(d.out, StyleTitle.Render(title))
	if subtitle != "" {
		fmt.Fprintln(d.out, StyleMuted.Render(subtitle))
	}
	fmt.Fprintln(d.out)
}

// ShowSidebar prints per-section progress, marking the current section.
func (d *Display) ShowSidebar(sections []completeness.SectionProgress, current string) {
	for _, sp := range sections {
		marker := StyleSectionOpen.String()
		switch {
		case sp.Section == current:
			marker = StyleSectionCurrent.String()
		case sp.Complete():
			marker = StyleSectionDone.String()
		}
		counts := StyleMuted.Render(fmt.Sprintf("%d/%d", sp.Answered, sp.Total))
		fmt.Fprintf(d.out, " %s %s %s\n", marker, sp.Section, counts)
	}
	fmt.Fprintln(d.out)
}

// ShowQuestion prints the card for one question. current is the stored
// answer, shown as the value kept when the user submits nothing.
func (d *Display) ShowQuestion(q catalog.Question, position, total int, current catalog.Value) {
	fmt.Fprint(d.out, RenderQuestion(q, position, total, current, GetTerminalWidth()))
}

// RenderQuestion builds the question card.
func RenderQuestion(q catalog.Question, position, total int, current catalog.Value, width int) string {
	var b strings.Builder

	title := StyleBold.Render(q.Label)
	if q.Optional {
		title += " " + StyleMuted.Render("(optional)")
	}
	fmt.Fprintf(&b, "%s  %s\n", StyleMuted.Render(fmt.Sprintf("%d/%d", position, total)), title)
	if q.Description != "" {
		fmt.Fprintf(&b, "%s\n", StyleMuted.Render(q.Description))
	}

	switch q.Type {
	case catalog.TypeSelect, catalog.TypeMultiselect:
		b.WriteString("\n")
		for i, opt := range q.Options {
			mark := " "
			if slices.Contains(current.Items(), opt) || current.Str() == opt {
				mark = StyleSuccess.Render("✓")
			}
			fmt.Fprintf(&b, " %s %2d) %s\n", mark, i+1, opt)
		}
		if q.Type == catalog.TypeMultiselect {
			b.WriteString(StyleMuted.Render("Enter numbers separated by commas, or - to clear") + "\n")
		}
	case catalog.TypeBoolean:
		b.WriteString(StyleMuted.Render("y/n") + "\n")
	case catalog.TypeTextarea:
		b.WriteString(StyleMuted.Render("End with an empty line") + "\n")
	}

	switch {
	case !current.IsEmpty():
		fmt.Fprintf(&b, "%s %s\n", StyleMuted.Render("Current:"), truncate(current.Display(), 60))
	case q.HasDefault():
		fmt.Fprintf(&b, "%s %s\n", StyleMuted.Render("Default:"), q.Default.Display())
	case q.Placeholder != "":
		fmt.Fprintf(&b, "%s\n", StyleMuted.Render(q.Placeholder))
	}

	box := BoxStyle(ColorInfo)
	if width > 4 {
		box = box.Width(width - 2)
	}
	return box.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

// ShowProgress prints the completeness bar.
func (d *Display) ShowProgress(percent int) {
	fmt.Fprintf(d.out, "  Completeness %s %3d%%\n", ProgressBar(percent), percent)
}

// ProgressBar renders a fixed-width bar for a 0-100 percentage.
func ProgressBar(percent int) string {
	percent = max(0, min(percent, 100))
	filled := percent * barWidth / 100
	return StyleProgressFilled.Render(strings.Repeat(barFilled, filled)) +
		StyleProgressEmpty.Render(strings.Repeat(barEmpty, barWidth-filled))
}

// ShowValidation prints an answer rejection.
func (d *Display) ShowValidation(err error) {
	fmt.Fprintf(d.out, "   %s %s\n", StyleError.Render("[!!]"), err)
}

// ShowNotice prints a non-blocking warning.
func (d *Display) ShowNotice(msg string) {
	fmt.Fprintf(d.out, "   %s %s\n", StyleWarning.Render("[--]"), msg)
}

// ShowInfo displays an info message.
func (d *Display) ShowInfo(format string, args ...interface{}) {
	fmt.Fprintf(d.out, format, args...)
}

// ShowSuccess displays a success box with detail lines.
func (d *Display) ShowSuccess(msg string, lines ...string) {
	d.StopSpinner()
	body := append([]string{StyleSuccess.Render("[ok] " + msg)}, lines...)
	fmt.Fprintln(d.out, SuccessBox().Render(strings.Join(body, "\n")))
}

// ShowError displays an error box.
func (d *Display) ShowError(msg string) {
	d.StopSpinner()
	fmt.Fprintln(d.out, ErrorBox().Render(StyleError.Render("[!!] Error")+"\n"+msg))
}

// formatElapsed formats duration with fixed width (always 6 chars like " 1.04s")
func formatElapsed(d time.Duration) string {
	secs := d.Seconds()
	if secs < 10 {
		return fmt.Sprintf("%5.2fs", secs)
	} else if secs < 100 {
		return fmt.Sprintf("%5.1fs", secs)
	}
	return fmt.Sprintf("%5.0fs", secs)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
