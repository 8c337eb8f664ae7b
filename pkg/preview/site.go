package preview

import "github.com/seldom-dev/seldom/pkg/vdom"

// Page is one servable route. Render is called per request so pages
// can reflect current process state.
type Page struct {
	// Route is the URL path, e.g. "/" or "/gallery".
	Route string

	// Title is the document title.
	Title string

	// Render produces the page body.
	Render func() *vdom.VNode
}

// Site is an ordered collection of pages. Order matters for export
// and navigation listings, so it is a slice, not a map.
type Site []Page

// Lookup returns the page registered for the given route.
func (s Site) Lookup(route string) (Page, bool) {
	for _, p := range s {
		if p.Route == route {
			return p, true
		}
	}
	return Page{}, false
}
