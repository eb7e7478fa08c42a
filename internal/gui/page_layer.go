package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/rescale/circular-pager/internal/logging"
	"github.com/rescale/circular-pager/internal/pager"
)

var _ pager.Display = (*PageLayer)(nil)

// CanvasPage is a pager page backed by a fyne canvas object.
type CanvasPage interface {
	pager.Page
	CanvasObject() fyne.CanvasObject
}

// PageLayer is the display surface that attached pages are parented to.
// It is a layout-less container, so frames set by the pager are kept.
type PageLayer struct {
	container   *fyne.Container
	interactive map[pager.Page]bool
	log         *logging.Logger
}

// NewPageLayer creates an empty page layer.
func NewPageLayer(log *logging.Logger) *PageLayer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &PageLayer{
		container:   container.NewWithoutLayout(),
		interactive: make(map[pager.Page]bool),
		log:         log,
	}
}

// CanvasObject returns the container holding attached pages.
func (l *PageLayer) CanvasObject() fyne.CanvasObject {
	return l.container
}

// Attach adds the page's canvas object to the layer.
func (l *PageLayer) Attach(p pager.Page) {
	obj := l.objectOf(p)
	if obj == nil {
		return
	}
	l.container.Add(obj)
}

// Detach removes the page's canvas object from the layer.
func (l *PageLayer) Detach(p pager.Page) {
	obj := l.objectOf(p)
	if obj == nil {
		return
	}
	l.container.Remove(obj)
	delete(l.interactive, p)
}

// SetFrame positions and sizes the page.
func (l *PageLayer) SetFrame(p pager.Page, r pager.Rect) {
	obj := l.objectOf(p)
	if obj == nil {
		return
	}
	obj.Move(fyne.NewPos(float32(r.X), float32(r.Y)))
	obj.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
}

// SetInteractive enables or disables every disableable widget in the page.
func (l *PageLayer) SetInteractive(p pager.Page, interactive bool) {
	obj := l.objectOf(p)
	if obj == nil {
		return
	}
	l.interactive[p] = interactive
	setEnabled(obj, interactive)
}

// Interactive reports the last interaction state set for an attached page.
func (l *PageLayer) Interactive(p pager.Page) bool {
	return l.interactive[p]
}

// Objects returns the canvas objects currently parented to the layer.
func (l *PageLayer) Objects() []fyne.CanvasObject {
	return l.container.Objects
}

func (l *PageLayer) objectOf(p pager.Page) fyne.CanvasObject {
	switch v := p.(type) {
	case CanvasPage:
		return v.CanvasObject()
	case fyne.CanvasObject:
		return v
	}
	l.log.Warnf("page %T has no canvas object", p)
	return nil
}

func setEnabled(obj fyne.CanvasObject, enabled bool) {
	if d, ok := obj.(fyne.Disableable); ok {
		if enabled {
			d.Enable()
		} else {
			d.Disable()
		}
	}
	if c, ok := obj.(*fyne.Container); ok {
		for _, child := range c.Objects {
			setEnabled(child, enabled)
		}
	}
}
