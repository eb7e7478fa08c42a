package pager

// Page is an application-owned page content handle.
//
// The pager never creates or destroys pages; it only attaches, detaches and
// positions them, calling the lifecycle hooks around each transition.
// Pages are compared by identity (interface equality), so implementations
// must be comparable, normally pointer types. The same page appearing more
// than once in a page list makes index lookups ambiguous.
type Page interface {
	WillAttach()
	DidAttach()
	WillDetach()
	DidDetach()
}

// BasePage provides no-op lifecycle hooks for embedding.
type BasePage struct{}

func (BasePage) WillAttach() {}
func (BasePage) DidAttach()  {}
func (BasePage) WillDetach() {}
func (BasePage) DidDetach()  {}

// Rect is a page frame in scroll surface coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Display is the surface pages are parented to while attached.
type Display interface {
	Attach(p Page)
	Detach(p Page)
	SetFrame(p Page, r Rect)
	SetInteractive(p Page, interactive bool)
}

// ScrollSurface is the horizontal scroll / drag input surface.
//
// OnContinuousOffsetChange handlers fire on every offset update while the
// user drags; OnSettle handlers fire once when the offset comes to rest.
// SetOffsetX with suppressEvents must not invoke the continuous handler.
type ScrollSurface interface {
	OffsetX() float64
	SetOffsetX(x float64, suppressEvents bool)
	ViewportWidth() float64
	ViewportHeight() float64
	SetContentWidth(w float64)
	OnContinuousOffsetChange(handler func(x float64))
	OnSettle(handler func(x float64))
}

// Name returns the conventional label of the i-th page: A..Z, then AA, AB, ...
func Name(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}
