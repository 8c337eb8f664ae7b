// Package vdom provides in-memory HTML element trees and the selector
// based element builder that constructs them.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, and raw HTML. Props holds attributes; Attr is a single
// key/value pair.
//
// # Element API
//
// The primary entry point is El, which takes a compact selector and a
// variadic list of children, text, property bags, and callbacks:
//
//	El("div#app.card.shadow",
//	    El("h1", "Title"),
//	    El("input", Props{"type": "email", "required": true}),
//	    "plain text",
//	)
//
// Named factory functions cover the common tags:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Both forms share the same argument classification and can be mixed
// freely. Construction is synchronous, keeps no shared state, and
// never fails; invalid input degrades silently rather than erroring.
package vdom
