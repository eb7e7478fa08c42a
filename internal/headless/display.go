// Package headless provides in-memory display and scroll surfaces for
// driving a pager without a window system. Every consumed call is
// recorded so callers can inspect exactly what the pager did.
package headless

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rescale/circular-pager/internal/pager"
)

// Op names a recorded display operation.
type Op string

const (
	OpAttach      Op = "attach"
	OpDetach      Op = "detach"
	OpFrame       Op = "frame"
	OpInteractive Op = "interactive"
)

// Call is one recorded display operation.
type Call struct {
	Op          Op
	Page        pager.Page
	Frame       pager.Rect
	Interactive bool
}

// Display records attach/detach/frame/interactive calls.
type Display struct {
	Calls []Call

	attached    []pager.Page
	frames      map[pager.Page]pager.Rect
	interactive map[pager.Page]bool
}

// NewDisplay creates an empty recording display.
func NewDisplay() *Display {
	return &Display{
		frames:      make(map[pager.Page]pager.Rect),
		interactive: make(map[pager.Page]bool),
	}
}

func (d *Display) Attach(p pager.Page) {
	d.Calls = append(d.Calls, Call{Op: OpAttach, Page: p})
	if !slices.Contains(d.attached, p) {
		d.attached = append(d.attached, p)
	}
}

func (d *Display) Detach(p pager.Page) {
	d.Calls = append(d.Calls, Call{Op: OpDetach, Page: p})
	if i := slices.Index(d.attached, p); i >= 0 {
		d.attached = slices.Delete(d.attached, i, i+1)
	}
	delete(d.frames, p)
}

func (d *Display) SetFrame(p pager.Page, r pager.Rect) {
	d.Calls = append(d.Calls, Call{Op: OpFrame, Page: p, Frame: r})
	d.frames[p] = r
}

func (d *Display) SetInteractive(p pager.Page, interactive bool) {
	d.Calls = append(d.Calls, Call{Op: OpInteractive, Page: p, Interactive: interactive})
	d.interactive[p] = interactive
}

// Attached returns the currently attached pages in attach order.
func (d *Display) Attached() []pager.Page {
	return slices.Clone(d.attached)
}

// IsAttached reports whether p is attached.
func (d *Display) IsAttached(p pager.Page) bool {
	return slices.Contains(d.attached, p)
}

// Frame returns the last frame written for an attached page.
func (d *Display) Frame(p pager.Page) (pager.Rect, bool) {
	r, ok := d.frames[p]
	return r, ok
}

// Interactive returns the last interactivity flag written for p.
func (d *Display) Interactive(p pager.Page) bool {
	return d.interactive[p]
}

// Count returns the number of recorded calls of the given op.
func (d *Display) Count(op Op) int {
	n := 0
	for _, c := range d.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps the attached state.
func (d *Display) Reset() {
	d.Calls = nil
}

// Describe renders the attached pages sorted by frame position, e.g.
// "C@200 [A@300] B@400" with the interactive page bracketed.
func (d *Display) Describe() string {
	pages := d.Attached()
	slices.SortFunc(pages, func(a, b pager.Page) int {
		fa, fb := d.frames[a], d.frames[b]
		switch {
		case fa.X < fb.X:
			return -1
		case fa.X > fb.X:
			return 1
		}
		return 0
	})
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		s := fmt.Sprintf("%v@%g", p, d.frames[p].X)
		if d.interactive[p] {
			s = "[" + s + "]"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
