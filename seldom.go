// Package seldom builds HTML element trees from CSS-style selector
// strings and renders them to HTML.
//
// The core entry point is El, which parses a selector and dispatches
// its remaining arguments by type:
//
//	card := seldom.El("div#profile.card.shadow",
//		seldom.El("h2", "Ada Lovelace"),
//		seldom.El("p.bio", "Mathematician"),
//		seldom.Props{"data-user": "ada"},
//	)
//	html, _ := seldom.RenderString(card)
//
// The subpackages hold the full surface: pkg/vdom for tree
// construction, pkg/render for HTML output, pkg/dump for debug trees,
// pkg/preview for the development server.
package seldom

import (
	"github.com/seldom-dev/seldom/pkg/render"
	"github.com/seldom-dev/seldom/pkg/vdom"
)

// Core types, re-exported so simple programs only import this package.
type (
	VNode = vdom.VNode
	Props = vdom.Props
	Attr  = vdom.Attr
)

// El builds an element from a selector like "button#save.primary" and
// a list of children, text, attribute bags, and build callbacks. See
// pkg/vdom for the full dispatch rules.
func El(selector string, args ...any) *VNode {
	return vdom.El(selector, args...)
}

// Text creates a text node.
func Text(text string) *VNode {
	return vdom.Text(text)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return vdom.Textf(format, args...)
}

// Raw creates a raw HTML node. The content is rendered unescaped.
func Raw(html string) *VNode {
	return vdom.Raw(html)
}

// Fragment groups nodes without a wrapping element.
func Fragment(args ...any) *VNode {
	return vdom.Fragment(args...)
}

// RenderString renders a node to compact HTML.
func RenderString(node *VNode) (string, error) {
	return render.NewRenderer(render.RendererConfig{}).RenderToString(node)
}
