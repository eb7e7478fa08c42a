package pager

import (
	"math"
)

// Reconcile brings the attached page set in line with the preload window:
// pages that left the window are detached, new ones are attached, and
// frames and interactivity are written only when they change. Calling it
// again without an intervening state change does nothing.
func (p *Pager) Reconcile() {
	window := Window(p.actual, len(p.repeated), len(p.pages), p.circular, p.radius)

	want := make(map[Page]int, len(window))
	wantOrder := make([]Page, 0, len(window))
	for _, i := range window {
		pg := p.repeated[i]
		if _, dup := want[pg]; dup {
			continue
		}
		want[pg] = i
		wantOrder = append(wantOrder, pg)
	}

	kept := p.order[:0]
	for _, pg := range p.order {
		if _, ok := want[pg]; ok {
			kept = append(kept, pg)
			continue
		}
		p.detach(pg)
	}
	clear(p.order[len(kept):])
	p.order = kept

	for _, pg := range wantOrder {
		i := want[pg]
		frame := p.frameFor(i)
		interactive := p.actual.Valid && i == p.actual.Value

		s, ok := p.attached[pg]
		if !ok {
			p.attach(pg, i, frame, interactive)
			continue
		}
		s.index = i
		if s.frame != frame {
			p.display.SetFrame(pg, frame)
			s.frame = frame
		}
		if s.interactive != interactive {
			p.display.SetInteractive(pg, interactive)
			s.interactive = interactive
		}
	}

	p.verify(want)
}

func (p *Pager) attach(pg Page, i int, frame Rect, interactive bool) {
	pg.WillAttach()
	p.display.SetFrame(pg, frame)
	p.display.Attach(pg)
	p.display.SetInteractive(pg, interactive)
	p.attached[pg] = &slot{index: i, frame: frame, interactive: interactive}
	p.order = append(p.order, pg)
	pg.DidAttach()

	if p.bus != nil {
		p.bus.PublishAttached(pg, i)
	}
}

// detach removes pg from the display. The caller removes it from p.order.
func (p *Pager) detach(pg Page) {
	pg.WillDetach()
	delete(p.attached, pg)
	p.display.Detach(pg)
	p.display.SetInteractive(pg, true)
	pg.DidDetach()

	if p.bus != nil {
		p.bus.PublishDetached(pg)
	}
}

// frameFor places the page at actual index i. X is rounded so adjacent
// pages never leave a sub-pixel seam.
func (p *Pager) frameFor(i int) Rect {
	w := p.scroll.ViewportWidth()
	return Rect{
		X:      math.Round(float64(i) * w),
		Y:      0,
		Width:  w,
		Height: p.scroll.ViewportHeight(),
	}
}

// verify logs any disagreement between the attached set, the window and
// the current page. Any hit is a bug in the pager, not a runtime condition.
func (p *Pager) verify(want map[Page]int) {
	if len(p.attached) != len(want) || len(p.order) != len(want) {
		p.log.Errorf("Attached page set (%d attached, %d ordered) does not match preload window of %d",
			len(p.attached), len(p.order), len(want))
		return
	}
	for pg, i := range want {
		s, ok := p.attached[pg]
		if !ok || s.index != i {
			p.log.Errorf("Window page not attached at actual index %d", i)
			return
		}
	}
	if cur := p.logical(); cur.Valid && p.actual.Value < len(p.repeated) {
		if p.repeated[p.actual.Value] != p.pages[cur.Value] {
			p.log.Errorf("Current page does not match current index %d (logical %d)",
				p.actual.Value, cur.Value)
		}
	}
}
