package gui

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/rescale/circular-pager/internal/constants"
	"github.com/rescale/circular-pager/internal/pager"
)

const (
	// Scroll bar constants
	scrollBarMinLength = 20
	scrollBarAreaWidth = 12
)

var _ pager.ScrollSurface = (*PagingScroll)(nil)

// PagingScroll is a horizontal scroll surface for the pager.
//
// Dragging the content or the scroll bar reports continuous offset changes
// and settles on drag end. Wheel and trackpad scrolling report continuous
// changes and settle once no scroll event has arrived for SettleDelay.
// Vertical wheel motion pages horizontally.
//
// With AllowOverscroll set, user motion may pull the content up to a
// quarter viewport past either edge. It springs back when motion settles.
type PagingScroll struct {
	widget.BaseWidget
	Content         fyne.CanvasObject
	Multiplier      float32
	SettleDelay     time.Duration
	AllowOverscroll bool
	OnResized       func(fyne.Size)

	offset       float32
	contentWidth float32
	onChange     func(x float64)
	onSettle     func(x float64)

	timerMu     sync.Mutex
	settleTimer *time.Timer
}

// NewPagingScroll creates a paging scroll surface around the page layer.
func NewPagingScroll(content fyne.CanvasObject) *PagingScroll {
	ps := &PagingScroll{
		Content:     content,
		Multiplier:  constants.DefaultScrollMultiplier,
		SettleDelay: constants.DefaultSettleDelay,
	}
	ps.ExtendBaseWidget(ps)
	return ps
}

// OffsetX returns the horizontal content offset.
func (ps *PagingScroll) OffsetX() float64 {
	return float64(ps.offset)
}

// SetOffsetX moves the content. Continuous change handlers only run when
// suppressEvents is false.
func (ps *PagingScroll) SetOffsetX(x float64, suppressEvents bool) {
	ps.offset = ps.clampOffset(float32(x))
	ps.Refresh()
	if !suppressEvents && ps.onChange != nil {
		ps.onChange(float64(ps.offset))
	}
}

// ViewportWidth returns the visible width, which is also the page width.
func (ps *PagingScroll) ViewportWidth() float64 {
	return float64(ps.Size().Width)
}

// ViewportHeight returns the visible height.
func (ps *PagingScroll) ViewportHeight() float64 {
	return float64(ps.Size().Height)
}

// SetContentWidth sets the scrollable extent.
func (ps *PagingScroll) SetContentWidth(w float64) {
	ps.contentWidth = float32(w)
	ps.offset = ps.clampOffset(ps.offset)
	ps.Refresh()
}

// ContentWidth returns the scrollable extent.
func (ps *PagingScroll) ContentWidth() float64 {
	return float64(ps.contentWidth)
}

// OnContinuousOffsetChange registers the handler for user driven motion.
func (ps *PagingScroll) OnContinuousOffsetChange(handler func(x float64)) {
	ps.onChange = handler
}

// OnSettle registers the handler for the end of user driven motion.
func (ps *PagingScroll) OnSettle(handler func(x float64)) {
	ps.onSettle = handler
}

// MinSize returns the minimum size required for the widget.
func (ps *PagingScroll) MinSize() fyne.Size {
	return fyne.NewSize(32, 32)
}

// Scrolled handles wheel and trackpad events.
func (ps *PagingScroll) Scrolled(e *fyne.ScrollEvent) {
	delta := e.Scrolled.DX
	if delta == 0 {
		delta = e.Scrolled.DY
	}
	if delta == 0 {
		return
	}
	ps.scrollBy(-delta * ps.Multiplier)
	ps.scheduleSettle()
}

// Dragged handles content drags.
func (ps *PagingScroll) Dragged(e *fyne.DragEvent) {
	ps.cancelSettle()
	ps.scrollBy(-e.Dragged.DX)
}

// DragEnd settles the offset.
func (ps *PagingScroll) DragEnd() {
	ps.settle()
}

// scrollBy updates the offset by the given delta and reports it.
func (ps *PagingScroll) scrollBy(dx float32) {
	ps.SetOffsetX(float64(ps.offset+dx), false)
}

func (ps *PagingScroll) settle() {
	ps.cancelSettle()
	if ps.onSettle != nil {
		ps.onSettle(float64(ps.offset))
	}
	if x := ps.clampToContent(ps.offset); x != ps.offset {
		ps.offset = x
		ps.Refresh()
	}
}

func (ps *PagingScroll) scheduleSettle() {
	ps.timerMu.Lock()
	defer ps.timerMu.Unlock()

	if ps.settleTimer != nil {
		ps.settleTimer.Stop()
	}
	ps.settleTimer = time.AfterFunc(ps.SettleDelay, func() {
		fyne.Do(ps.settle)
	})
}

func (ps *PagingScroll) cancelSettle() {
	ps.timerMu.Lock()
	defer ps.timerMu.Unlock()

	if ps.settleTimer != nil {
		ps.settleTimer.Stop()
		ps.settleTimer = nil
	}
}

// clampOffset keeps the offset within the content, plus the overscroll
// margin when AllowOverscroll is set.
func (ps *PagingScroll) clampOffset(x float32) float32 {
	if !ps.AllowOverscroll {
		return ps.clampToContent(x)
	}
	limit := ps.Size().Width / 4
	maxX := ps.contentWidth - ps.Size().Width
	if maxX < 0 {
		maxX = 0
	}
	if x < -limit {
		return -limit
	}
	if x > maxX+limit {
		return maxX + limit
	}
	return x
}

func (ps *PagingScroll) clampToContent(x float32) float32 {
	maxX := ps.contentWidth - ps.Size().Width
	if maxX <= 0 || x < 0 {
		return 0
	}
	if x > maxX {
		return maxX
	}
	return x
}

// CreateRenderer returns the renderer for this widget.
func (ps *PagingScroll) CreateRenderer() fyne.WidgetRenderer {
	ps.ExtendBaseWidget(ps)

	return &pagingScrollRenderer{
		scroll:     ps,
		background: canvas.NewRectangle(color.Transparent),
		bar:        newScrollBarArea(ps),
	}
}

// Resize resizes the widget and reports the new viewport.
func (ps *PagingScroll) Resize(size fyne.Size) {
	old := ps.Size()
	ps.BaseWidget.Resize(size)
	if old == size {
		return
	}
	if ps.OnResized != nil {
		ps.OnResized(size)
	}
}

// pagingScrollRenderer renders the scroll surface.
type pagingScrollRenderer struct {
	scroll     *PagingScroll
	background *canvas.Rectangle
	bar        *scrollBarArea
}

func (r *pagingScrollRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	if r.scroll.Content == nil {
		return
	}

	contentWidth := r.scroll.contentWidth
	if contentWidth < size.Width {
		contentWidth = size.Width
	}
	r.scroll.Content.Resize(fyne.NewSize(contentWidth, size.Height))

	// Position content at negative offset (creates scroll effect)
	r.scroll.Content.Move(fyne.NewPos(-r.scroll.offset, 0))

	if contentWidth > size.Width {
		r.bar.Show()
		r.bar.Resize(fyne.NewSize(size.Width, scrollBarAreaWidth))
		r.bar.Move(fyne.NewPos(0, size.Height-scrollBarAreaWidth))
		r.bar.updateBar(r.scroll.offset, contentWidth, size.Width)
	} else {
		r.bar.Hide()
	}
}

func (r *pagingScrollRenderer) MinSize() fyne.Size {
	return r.scroll.MinSize()
}

func (r *pagingScrollRenderer) Refresh() {
	r.Layout(r.scroll.Size())
	if r.scroll.Content != nil {
		r.scroll.Content.Refresh()
	}
	r.bar.Refresh()
	canvas.Refresh(r.scroll)
}

func (r *pagingScrollRenderer) Objects() []fyne.CanvasObject {
	if r.scroll.Content == nil {
		return []fyne.CanvasObject{r.background, r.bar}
	}
	return []fyne.CanvasObject{r.background, r.scroll.Content, r.bar}
}

func (r *pagingScrollRenderer) Destroy() {
	r.scroll.cancelSettle()
}

// scrollBarArea is the horizontal track and thumb under the pages.
type scrollBarArea struct {
	widget.BaseWidget
	parent    *PagingScroll
	thumbPos  float32
	thumbSize float32
}

func newScrollBarArea(parent *PagingScroll) *scrollBarArea {
	sba := &scrollBarArea{parent: parent}
	sba.ExtendBaseWidget(sba)
	return sba
}

func (sba *scrollBarArea) updateBar(offset, contentLength, viewportLength float32) {
	if contentLength <= viewportLength {
		sba.thumbSize = viewportLength
		sba.thumbPos = 0
		return
	}

	// Thumb size is proportional to visible portion
	sba.thumbSize = (viewportLength / contentLength) * viewportLength
	if sba.thumbSize < scrollBarMinLength {
		sba.thumbSize = scrollBarMinLength
	}

	maxOffset := contentLength - viewportLength
	trackSpace := viewportLength - sba.thumbSize
	sba.thumbPos = (offset / maxOffset) * trackSpace
}

func (sba *scrollBarArea) CreateRenderer() fyne.WidgetRenderer {
	track := canvas.NewRectangle(theme.Color(theme.ColorNameScrollBar))
	track.SetMinSize(fyne.NewSize(scrollBarAreaWidth, scrollBarAreaWidth))

	thumb := canvas.NewRectangle(theme.Color(theme.ColorNameForeground))

	return &scrollBarAreaRenderer{
		area:  sba,
		track: track,
		thumb: thumb,
	}
}

// Dragged converts thumb motion in track space to a content offset.
func (sba *scrollBarArea) Dragged(e *fyne.DragEvent) {
	sba.parent.cancelSettle()

	contentLength := sba.parent.contentWidth
	viewportLength := sba.parent.Size().Width
	if contentLength <= viewportLength {
		return
	}

	trackSpace := viewportLength - sba.thumbSize
	if trackSpace <= 0 {
		return
	}
	maxOffset := contentLength - viewportLength
	sba.parent.scrollBy((e.Dragged.DX / trackSpace) * maxOffset)
}

func (sba *scrollBarArea) DragEnd() {
	sba.parent.settle()
}

var _ desktop.Hoverable = (*scrollBarArea)(nil)

func (sba *scrollBarArea) MouseIn(*desktop.MouseEvent)    {}
func (sba *scrollBarArea) MouseOut()                      {}
func (sba *scrollBarArea) MouseMoved(*desktop.MouseEvent) {}

// scrollBarAreaRenderer renders the scroll bar area.
type scrollBarAreaRenderer struct {
	area  *scrollBarArea
	track *canvas.Rectangle
	thumb *canvas.Rectangle
}

func (r *scrollBarAreaRenderer) Layout(size fyne.Size) {
	r.track.Resize(size)

	thumbHeight := size.Height * 0.6
	thumbY := (size.Height - thumbHeight) / 2
	r.thumb.Resize(fyne.NewSize(r.area.thumbSize, thumbHeight))
	r.thumb.Move(fyne.NewPos(r.area.thumbPos, thumbY))
}

func (r *scrollBarAreaRenderer) MinSize() fyne.Size {
	return fyne.NewSize(scrollBarAreaWidth, scrollBarAreaWidth)
}

func (r *scrollBarAreaRenderer) Refresh() {
	r.track.FillColor = theme.Color(theme.ColorNameScrollBar)
	r.thumb.FillColor = theme.Color(theme.ColorNameForeground)
	r.Layout(r.area.Size())
	r.track.Refresh()
	r.thumb.Refresh()
}

func (r *scrollBarAreaRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.track, r.thumb}
}

func (r *scrollBarAreaRenderer) Destroy() {}
