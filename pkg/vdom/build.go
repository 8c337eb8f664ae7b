package vdom

import "strings"

// El creates an element from a compact selector plus trailing
// arguments. The selector names the tag and optional decorations
// ("button#submit.primary.wide"); an empty selector yields a plain
// div. Each trailing argument is classified by its runtime shape:
//
//   - *VNode or []*VNode: appended as children, in call order
//   - func(*VNode): invoked synchronously with the new node
//   - string: appended as a text-node child
//   - Props, map[string]any, Attr, []Attr: property bag, entries
//     shallow-copied onto the node (last write wins, so a bag "id"
//     overrides one set by the selector)
//
// nil and false arguments are no-ops, which keeps conditional
// children ergonomic:
//
//	El("ul.menu",
//	    El("li", "Home"),
//	    loggedIn && false, // placeholder collapses to nothing
//	)
//
// El never fails and performs no validation: an unknown tag renders
// as written, a malformed selector loses segments, an argument of an
// unhandled shape is dropped.
func El(selector string, args ...any) *VNode {
	tag, id, classes := parseSelector(selector)
	node := newElement(tag)
	if id != "" {
		node.Props["id"] = id
	}
	if len(classes) > 0 {
		node.Props["class"] = strings.Join(classes, " ")
	}
	for _, arg := range args {
		node.apply(arg)
	}
	return node
}

// createElement backs the named constructors (Div, Span, ...). It
// skips selector parsing but shares the argument pass with El.
func createElement(tag string, args []any) *VNode {
	node := newElement(tag)
	for _, arg := range args {
		node.apply(arg)
	}
	return node
}

func newElement(tag string) *VNode {
	return &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}
}

// apply classifies one trailing argument and mutates the node.
// Exactly one action per argument; unhandled shapes are dropped
// silently. Arguments are never copied: an appended child is the
// same *VNode the caller holds.
func (n *VNode) apply(arg any) {
	switch v := arg.(type) {
	case nil:
		// Conditional child that collapsed to nothing.

	case bool:
		// false from an inline condition; true carries no meaning.

	case *VNode:
		if v != nil {
			n.Children = append(n.Children, v)
		}

	case []*VNode:
		for _, child := range v {
			if child != nil {
				n.Children = append(n.Children, child)
			}
		}

	case func(*VNode):
		// Side-effecting visitor, runs before the next argument.
		if v != nil {
			v(n)
		}

	case string:
		n.Children = append(n.Children, Text(v))

	case Attr:
		if v.Key != "" {
			n.Props[v.Key] = v.Value
		}

	case []Attr:
		for _, a := range v {
			if a.Key != "" {
				n.Props[a.Key] = a.Value
			}
		}

	case Props:
		for key, value := range v {
			n.Props[key] = value
		}

	case map[string]any:
		for key, value := range v {
			n.Props[key] = value
		}
	}
}
