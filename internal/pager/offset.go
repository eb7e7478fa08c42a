package pager

// handleOffsetChange tracks a drag in progress. The offset belongs to the
// gesture and is not written back.
func (p *Pager) handleOffsetChange(x float64) {
	if p.suppressed {
		return
	}
	w := p.scroll.ViewportWidth()
	if w <= 0 {
		return
	}
	p.setActualIndex(Some(CandidateIndex(x, w)), false)
}

// handleSettle re-centers onto the canonical copy and snaps the offset to
// the exact page position.
func (p *Pager) handleSettle(x float64) {
	if p.suppressed {
		return
	}
	w := p.scroll.ViewportWidth()
	if w <= 0 {
		return
	}

	next := None
	if n := len(p.repeated); n > 0 {
		c := clamp(CandidateIndex(x, w), 0, n-1)
		next = Some(ToActual(Some(c), len(p.pages), p.circular))
	}
	p.setActualIndex(next, true)

	if p.bus != nil {
		p.bus.PublishSettled(x, p.scroll.OffsetX(), p.actual.OrNoIndex())
	}
}

// setActualIndex moves to actual index next, clamped into the repeated
// sequence, reconciles, optionally snaps the offset, and notifies the
// listener when the logical index or the current page changed.
func (p *Pager) setActualIndex(next Index, updateOffset bool) {
	p.moveTo(next, updateOffset, p.logical(), p.CurrentPage())
}

// moveTo is setActualIndex with the pre-update state supplied by the
// caller, for callers that mutate the page list first.
func (p *Pager) moveTo(next Index, updateOffset bool, prevLogical Index, prevPage Page) {
	switch n := len(p.repeated); {
	case n == 0:
		p.actual = None
	case !next.Valid:
		p.actual = Some(ToActual(None, len(p.pages), p.circular))
	default:
		p.actual = Some(clamp(next.Value, 0, n-1))
	}

	p.Reconcile()

	if updateOffset {
		p.writeOffset()
	}

	if p.logical() != prevLogical || p.CurrentPage() != prevPage {
		p.notify()
	}
}

// writeOffset aligns the scroll surface with the current actual index
// without feeding the write back into handleOffsetChange.
func (p *Pager) writeOffset() {
	x := float64(p.actual.Value) * p.scroll.ViewportWidth()
	if !p.actual.Valid {
		x = 0
	}
	p.suppressed = true
	p.scroll.SetOffsetX(x, true)
	p.suppressed = false
}

func (p *Pager) notify() {
	cur := p.logical()
	page := p.CurrentPage()

	p.log.Debug().
		Int("index", cur.OrNoIndex()).
		Int("actual", p.actual.OrNoIndex()).
		Bool("circular", p.circular).
		Msg("Current index changed")

	if p.bus != nil {
		p.bus.PublishPageChanged(cur.OrNoIndex(), page, len(p.pages))
	}
	if p.listener != nil {
		p.listener(cur.OrNoIndex(), page)
	}
}
