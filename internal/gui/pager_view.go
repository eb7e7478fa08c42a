package gui

import (
	"fyne.io/fyne/v2"

	"github.com/rescale/circular-pager/internal/logging"
	"github.com/rescale/circular-pager/internal/pager"
)

// PagerView hosts a pager on a fyne scroll surface and page layer.
type PagerView struct {
	layer  *PageLayer
	scroll *PagingScroll
	pager  *pager.Pager
}

// NewPagerView creates the view. Pager options are passed through to the
// engine; the view re-lays out the pager whenever it is resized.
func NewPagerView(log *logging.Logger, opts ...pager.Option) (*PagerView, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}
	layer := NewPageLayer(log)
	scroll := NewPagingScroll(layer.CanvasObject())

	opts = append([]pager.Option{pager.WithLogger(log)}, opts...)
	p, err := pager.New(layer, scroll, opts...)
	if err != nil {
		return nil, err
	}

	v := &PagerView{
		layer:  layer,
		scroll: scroll,
		pager:  p,
	}
	scroll.OnResized = func(fyne.Size) {
		v.pager.Layout()
	}
	return v, nil
}

// CanvasObject returns the widget to place in a window.
func (v *PagerView) CanvasObject() fyne.CanvasObject {
	return v.scroll
}

// Pager returns the underlying engine.
func (v *PagerView) Pager() *pager.Pager {
	return v.pager
}

// Scroll returns the scroll surface.
func (v *PagerView) Scroll() *PagingScroll {
	return v.scroll
}

// Layer returns the page layer.
func (v *PagerView) Layer() *PageLayer {
	return v.layer
}

// SetPages replaces the page list and lays it out. A single page may be
// pulled past its edges and bounces back.
func (v *PagerView) SetPages(pages []pager.Page) {
	v.pager.SetPages(pages)
	v.scroll.AllowOverscroll = v.pager.SinglePage()
	v.pager.Layout()
}

// Next moves to the following page. Circular lists wrap; linear lists stop
// at the last page.
func (v *PagerView) Next() {
	v.step(1)
}

// Previous moves to the preceding page. Circular lists wrap; linear lists
// stop at the first page.
func (v *PagerView) Previous() {
	v.step(-1)
}

func (v *PagerView) step(delta int) {
	n := v.pager.Len()
	if n == 0 {
		return
	}
	cur, ok := v.pager.CurrentIndex()
	if !ok {
		v.pager.SetCurrentIndex(0)
		return
	}
	next := cur + delta
	if !v.pager.Circular() && (next < 0 || next >= n) {
		return
	}
	v.pager.SetCurrentIndex(next)
}
