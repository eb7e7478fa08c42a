package headless

import (
	"github.com/rescale/circular-pager/internal/pager"
)

// Page is a named page that records its lifecycle hooks.
type Page struct {
	Name      string
	Lifecycle []string
}

var _ pager.Page = (*Page)(nil)

// NewPages creates one page per name.
func NewPages(names ...string) []pager.Page {
	pages := make([]pager.Page, len(names))
	for i, name := range names {
		pages[i] = &Page{Name: name}
	}
	return pages
}

func (p *Page) String() string { return p.Name }

func (p *Page) WillAttach() { p.Lifecycle = append(p.Lifecycle, "will-attach") }
func (p *Page) DidAttach()  { p.Lifecycle = append(p.Lifecycle, "did-attach") }
func (p *Page) WillDetach() { p.Lifecycle = append(p.Lifecycle, "will-detach") }
func (p *Page) DidDetach()  { p.Lifecycle = append(p.Lifecycle, "did-detach") }
