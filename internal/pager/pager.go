// Package pager implements a windowed, optionally circular pager.
//
// A Pager shows one page of an ordered page list at a time on a horizontal
// scroll surface. Only the pages within a small preload window around the
// current page are attached to the display. When enough pages exist the
// list is laid out three times and the scroll position is kept in the
// middle copy, which makes swiping appear to wrap around.
//
// A Pager is not safe for concurrent use; all calls, including the scroll
// surface callbacks, must happen on the UI goroutine.
package pager

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rescale/circular-pager/internal/constants"
	"github.com/rescale/circular-pager/internal/events"
	"github.com/rescale/circular-pager/internal/logging"
)

// Configuration errors
var (
	ErrInvalidRadius     = errors.New("preload radius must be at least 1")
	ErrThresholdTooSmall = errors.New("circular threshold must be at least 2*radius+1")
	ErrNilSurface        = errors.New("display and scroll surfaces are required")
)

// ChangeFunc receives the new logical index (NoIndex when absent) and the
// new current page (nil when absent).
type ChangeFunc func(index int, page Page)

// Option configures a Pager.
type Option func(*Pager)

// WithPreloadRadius sets how many neighbors on each side stay attached.
func WithPreloadRadius(k int) Option {
	return func(p *Pager) { p.radius = k }
}

// WithCircularThreshold sets the minimum page count for circular mode.
func WithCircularThreshold(n int) Option {
	return func(p *Pager) { p.threshold = n }
}

// WithLogger sets the logger used for index changes and consistency errors.
func WithLogger(l *logging.Logger) Option {
	return func(p *Pager) { p.log = l }
}

// WithEvents publishes page changes, attach/detach and settle events on bus.
func WithEvents(bus *events.EventBus) Option {
	return func(p *Pager) { p.bus = bus }
}

// slot is the state of one attached page.
type slot struct {
	index       int
	frame       Rect
	interactive bool
}

// Pager is the windowed circular pager.
type Pager struct {
	display Display
	scroll  ScrollSurface

	radius    int
	threshold int
	log       *logging.Logger
	bus       *events.EventBus

	pages    []Page
	repeated []Page
	circular bool
	lookup   map[Page]int

	actual   Index
	attached map[Page]*slot
	order    []Page // attached pages in attach order

	listener   ChangeFunc
	suppressed bool
}

// New creates a pager bound to the given surfaces and registers its
// offset handlers on the scroll surface.
func New(display Display, scroll ScrollSurface, opts ...Option) (*Pager, error) {
	if display == nil || scroll == nil {
		return nil, ErrNilSurface
	}
	p := &Pager{
		display:   display,
		scroll:    scroll,
		radius:    constants.DefaultPreloadRadius,
		threshold: constants.DefaultCircularThreshold,
		lookup:    make(map[Page]int),
		attached:  make(map[Page]*slot),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.radius < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, p.radius)
	}
	if p.threshold < 2*p.radius+1 {
		return nil, fmt.Errorf("%w: got %d for radius %d", ErrThresholdTooSmall, p.threshold, p.radius)
	}
	if p.log == nil {
		p.log = logging.NewNopLogger()
	}

	scroll.OnContinuousOffsetChange(p.handleOffsetChange)
	scroll.OnSettle(p.handleSettle)
	return p, nil
}

// SetPages replaces the page list. The current page is preserved when it
// is still present in the new list; otherwise there is no current page
// until the next Layout or index assignment.
func (p *Pager) SetPages(pages []Page) {
	if slices.Equal(pages, p.pages) {
		return
	}

	prevLogical := p.logical()
	prevPage := p.CurrentPage()

	p.pages = slices.Clone(pages)
	p.circular = CircularActive(len(p.pages), p.threshold)
	p.repeated = Repeat(p.pages, p.circular)
	p.lookup = make(map[Page]int, len(p.pages))
	for i, pg := range p.pages {
		if _, dup := p.lookup[pg]; !dup {
			p.lookup[pg] = i
		}
	}
	p.scroll.SetContentWidth(p.contentWidth())

	if idx, ok := p.IndexOf(prevPage); ok {
		p.moveTo(Some(ToActual(Some(idx), len(p.pages), p.circular)), true, prevLogical, prevPage)
		return
	}

	p.log.Debugf("Current page not in new list, laying out all %d pages", len(p.pages))
	p.actual = None
	p.Reconcile()
	p.writeOffset()
	if prevLogical.Valid || prevPage != nil {
		p.notify()
	}
}

// Pages returns a copy of the logical page list.
func (p *Pager) Pages() []Page {
	return slices.Clone(p.pages)
}

// Len returns the logical page count.
func (p *Pager) Len() int {
	return len(p.pages)
}

// Circular reports whether wraparound paging is active.
func (p *Pager) Circular() bool {
	return p.circular
}

// SinglePage reports whether there is at most one page. Hosts allow
// horizontal overscroll (bounce) in that case, since nothing else scrolls.
func (p *Pager) SinglePage() bool {
	return len(p.pages) <= 1
}

// IndexOf returns the logical index of page by identity.
func (p *Pager) IndexOf(page Page) (int, bool) {
	if page == nil {
		return 0, false
	}
	i, ok := p.lookup[page]
	return i, ok
}

// CurrentIndex returns the current logical index.
func (p *Pager) CurrentIndex() (int, bool) {
	cur := p.logical()
	return cur.Value, cur.Valid
}

// ActualIndex returns the current position in the repeated sequence.
func (p *Pager) ActualIndex() (int, bool) {
	return p.actual.Value, p.actual.Valid
}

// SetCurrentIndex moves to logical index i and snaps the scroll offset to
// it. Out-of-range indexes wrap modulo the page count rather than clamp,
// on linear lists too: SetCurrentIndex(2) on [A, B] selects A.
func (p *Pager) SetCurrentIndex(i int) {
	p.setActualIndex(Some(ToActual(Some(i), len(p.pages), p.circular)), true)
}

// ClearCurrentIndex assigns an absent index, which resolves to the first
// page when pages exist.
func (p *Pager) ClearCurrentIndex() {
	p.setActualIndex(Some(ToActual(None, len(p.pages), p.circular)), true)
}

// CurrentPage returns the current page, or nil if there is none.
func (p *Pager) CurrentPage() Page {
	cur := p.logical()
	if !cur.Valid || cur.Value >= len(p.pages) {
		return nil
	}
	return p.pages[cur.Value]
}

// SetCurrentPage moves to page. A nil or unknown page behaves like
// ClearCurrentIndex.
func (p *Pager) SetCurrentPage(page Page) {
	if i, ok := p.IndexOf(page); ok {
		p.SetCurrentIndex(i)
		return
	}
	p.ClearCurrentIndex()
}

// OnCurrentIndexChanged registers the single change listener, replacing
// any previous one. A nil fn removes it.
func (p *Pager) OnCurrentIndexChanged(fn ChangeFunc) {
	p.listener = fn
}

// Attached returns the attached pages in attach order.
func (p *Pager) Attached() []Page {
	return slices.Clone(p.order)
}

// Layout runs a host layout pass: it updates the content width, reconciles
// the attached pages and re-aligns the offset. The first layout with pages
// and no current index establishes the first page as current.
func (p *Pager) Layout() {
	p.scroll.SetContentWidth(p.contentWidth())
	if !p.actual.Valid && len(p.pages) > 0 {
		p.setActualIndex(None, true)
		return
	}
	p.Reconcile()
	p.writeOffset()
}

func (p *Pager) logical() Index {
	return ToLogical(p.actual, len(p.pages))
}

func (p *Pager) contentWidth() float64 {
	w := p.scroll.ViewportWidth()
	return max(w, float64(len(p.repeated))*w)
}
