package headless

// Write is one recorded programmatic offset write.
type Write struct {
	X        float64
	Suppress bool
}

// Scroll is a scroll surface whose offset is driven by the caller.
type Scroll struct {
	Writes        []Write
	ContentWidths []float64

	offset       float64
	width        float64
	height       float64
	contentWidth float64

	onChange func(float64)
	onSettle func(float64)
}

// NewScroll creates a scroll surface with the given viewport size.
func NewScroll(width, height float64) *Scroll {
	return &Scroll{width: width, height: height}
}

func (s *Scroll) OffsetX() float64        { return s.offset }
func (s *Scroll) ViewportWidth() float64  { return s.width }
func (s *Scroll) ViewportHeight() float64 { return s.height }

// ContentWidth returns the last content width set by the pager.
func (s *Scroll) ContentWidth() float64 { return s.contentWidth }

func (s *Scroll) SetOffsetX(x float64, suppressEvents bool) {
	s.Writes = append(s.Writes, Write{X: x, Suppress: suppressEvents})
	s.offset = x
	if !suppressEvents && s.onChange != nil {
		s.onChange(x)
	}
}

func (s *Scroll) SetContentWidth(w float64) {
	s.ContentWidths = append(s.ContentWidths, w)
	s.contentWidth = w
}

func (s *Scroll) OnContinuousOffsetChange(handler func(x float64)) { s.onChange = handler }
func (s *Scroll) OnSettle(handler func(x float64))                 { s.onSettle = handler }

// DragTo moves the offset as a user drag would and fires the continuous
// handler.
func (s *Scroll) DragTo(x float64) {
	s.offset = x
	if s.onChange != nil {
		s.onChange(x)
	}
}

// Settle fires the settle handler at the current offset.
func (s *Scroll) Settle() {
	if s.onSettle != nil {
		s.onSettle(s.offset)
	}
}

// SettleAt moves the offset without a continuous change, as a fling
// coming to rest would, and fires the settle handler.
func (s *Scroll) SettleAt(x float64) {
	s.offset = x
	s.Settle()
}

// Resize changes the viewport size. The caller runs the pager's Layout.
func (s *Scroll) Resize(width, height float64) {
	s.width, s.height = width, height
}

// LastWrite returns the most recent programmatic offset write.
func (s *Scroll) LastWrite() (Write, bool) {
	if len(s.Writes) == 0 {
		return Write{}, false
	}
	return s.Writes[len(s.Writes)-1], true
}
