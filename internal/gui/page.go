package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var _ CanvasPage = (*ColorPage)(nil)

// ColorPage is a demo page: a colored card with a title and a button.
type ColorPage struct {
	Title string

	background *canvas.Rectangle
	label      *canvas.Text
	button     *widget.Button
	content    *fyne.Container
	attached   bool
}

// NewColorPage creates a page filled with c. onTap runs when the page's
// button is pressed while the page is interactive.
func NewColorPage(title string, c color.Color, onTap func()) *ColorPage {
	p := &ColorPage{Title: title}
	p.background = canvas.NewRectangle(c)
	p.label = canvas.NewText(title, color.White)
	p.label.TextSize = 48
	p.label.TextStyle = fyne.TextStyle{Bold: true}
	p.label.Alignment = fyne.TextAlignCenter
	p.button = NewPrimaryButton("Select "+title, onTap)
	p.content = container.NewStack(
		p.background,
		container.NewCenter(container.NewVBox(p.label, VerticalSpacer(16), p.button)),
	)
	return p
}

// CanvasObject returns the page content.
func (p *ColorPage) CanvasObject() fyne.CanvasObject {
	return p.content
}

// Attached reports whether the page is parented to the page layer.
func (p *ColorPage) Attached() bool {
	return p.attached
}

// Button returns the page's action button.
func (p *ColorPage) Button() *widget.Button {
	return p.button
}

func (p *ColorPage) WillAttach() {}

func (p *ColorPage) DidAttach() {
	p.attached = true
}

func (p *ColorPage) WillDetach() {}

func (p *ColorPage) DidDetach() {
	p.attached = false
}

func (p *ColorPage) String() string {
	return p.Title
}

// demoPalette is cycled through for demo pages.
var demoPalette = []color.NRGBA{
	{R: 0x00, G: 0x7A, B: 0xCC, A: 0xFF},
	{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF},
	{R: 0xFF, G: 0x98, B: 0x00, A: 0xFF},
	{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF},
	{R: 0x9C, G: 0x27, B: 0xB0, A: 0xFF},
	{R: 0x00, G: 0x96, B: 0x88, A: 0xFF},
}
