// Package progress reports the pager position ("page N of M") in both
// CLI (progress bar) and GUI (event bus) modes.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/rescale/circular-pager/internal/events"
)

// Reporter is the interface for reporting the current page in CLI and GUI modes.
type Reporter interface {
	SetTotal(total int)
	SetPosition(current int, label string)
	Finish()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewReporter returns a progress bar reporter when w is a terminal and a
// no-op reporter otherwise.
func NewReporter(w io.Writer) Reporter {
	f, ok := w.(*os.File)
	if !ok || !IsTerminal(f) {
		return NewNoOpPosition()
	}
	enableWindowsANSI(f)
	return NewCLIPosition(f)
}

// CLIPosition renders the position as a progress bar.
// Position is 1-based on the bar so the first page is not shown as empty.
type CLIPosition struct {
	w       io.Writer
	bar     *progressbar.ProgressBar
	total   int
	current int
	label   string
}

// NewCLIPosition creates a new CLI position reporter writing to w.
func NewCLIPosition(w io.Writer) *CLIPosition {
	return &CLIPosition{w: w, current: -1}
}

// SetTotal resets the bar for a new page count.
func (p *CLIPosition) SetTotal(total int) {
	if p.bar != nil && p.total == total {
		return
	}
	p.total = total
	p.current = -1
	if total <= 0 {
		p.bar = nil
		return
	}
	w := p.w
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("page"),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// SetPosition moves the bar to the given zero-based page. A negative
// index clears the bar.
func (p *CLIPosition) SetPosition(current int, label string) {
	p.current = current
	p.label = label
	if p.bar == nil {
		return
	}
	if label != "" {
		p.bar.Describe(fmt.Sprintf("page %s", label))
	} else {
		p.bar.Describe("page")
	}
	_ = p.bar.Set(current + 1)
}

// Finish terminates the bar line.
func (p *CLIPosition) Finish() {
	if p.bar != nil {
		_ = p.bar.Exit()
		fmt.Fprint(p.w, "\n")
		p.bar = nil
	}
}

// Position returns the last reported page and label.
func (p *CLIPosition) Position() (int, string) {
	return p.current, p.label
}

// GUIPosition publishes position updates to the event bus.
type GUIPosition struct {
	eventBus *events.EventBus
	total    int
}

// NewGUIPosition creates a new GUI position reporter.
func NewGUIPosition(eventBus *events.EventBus) *GUIPosition {
	return &GUIPosition{eventBus: eventBus}
}

// SetTotal records the page count used in later updates.
func (p *GUIPosition) SetTotal(total int) {
	p.total = total
}

// SetPosition publishes a position event with a 1-based page number.
func (p *GUIPosition) SetPosition(current int, label string) {
	page := current + 1
	if current < 0 {
		page = 0
	}
	p.eventBus.PublishPosition(page, p.total, label)
}

// Finish does nothing; the GUI keeps the last position visible.
func (p *GUIPosition) Finish() {}

// NoOpPosition is a reporter that does nothing (non-terminal output).
type NoOpPosition struct{}

// NewNoOpPosition creates a new no-op position reporter.
func NewNoOpPosition() *NoOpPosition {
	return &NoOpPosition{}
}

// SetTotal does nothing.
func (p *NoOpPosition) SetTotal(total int) {}

// SetPosition does nothing.
func (p *NoOpPosition) SetPosition(current int, label string) {}

// Finish does nothing.
func (p *NoOpPosition) Finish() {}
