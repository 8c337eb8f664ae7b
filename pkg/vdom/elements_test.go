package vdom

import "testing"

func TestNamedConstructors(t *testing.T) {
	elements := []struct {
		fn  func(...any) *VNode
		tag string
	}{
		{Div, "div"},
		{Span, "span"},
		{P, "p"},
		{H1, "h1"},
		{H2, "h2"},
		{Button, "button"},
		{Input, "input"},
		{Form, "form"},
		{A, "a"},
		{Ul, "ul"},
		{Ol, "ol"},
		{Li, "li"},
		{Table, "table"},
		{Tr, "tr"},
		{Td, "td"},
		{Img, "img"},
		{Header, "header"},
		{Footer, "footer"},
		{Nav, "nav"},
		{Section, "section"},
		{Article, "article"},
		{Select, "select"},
		{Option, "option"},
		{Label, "label"},
		{Textarea, "textarea"},
		{Time_, "time"},
	}

	for _, e := range elements {
		t.Run(e.tag, func(t *testing.T) {
			node := e.fn(Class("test"))
			if node.Kind != KindElement {
				t.Errorf("Kind = %v, want KindElement", node.Kind)
			}
			if node.Tag != e.tag {
				t.Errorf("Tag = %v, want %v", node.Tag, e.tag)
			}
			if node.Props["class"] != "test" {
				t.Errorf("class = %v, want test", node.Props["class"])
			}
		})
	}
}

func TestConstructorsShareElDispatch(t *testing.T) {
	// The named constructors and El classify arguments identically.
	a := Div(Class("card"), P(Text("hi")), "tail")
	b := El("div.card", El("p", "hi"), "tail")
	if a.Tag != b.Tag || a.Props["class"] != b.Props["class"] {
		t.Errorf("constructor and El disagree: %v vs %v", a, b)
	}
	if len(a.Children) != len(b.Children) {
		t.Errorf("children differ: %d vs %d", len(a.Children), len(b.Children))
	}
}

func TestVoidElements(t *testing.T) {
	voids := []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "param", "source", "track", "wbr"}
	for _, tag := range voids {
		if !IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = false, want true", tag)
		}
	}

	nonVoids := []string{"div", "span", "p", "a", "button"}
	for _, tag := range nonVoids {
		if IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = true, want false", tag)
		}
	}
}

func TestCustomElement(t *testing.T) {
	node := CustomElement("my-component", Class("custom"), Attr{Key: "data-value", Value: "test"})
	if node.Tag != "my-component" {
		t.Errorf("Tag = %v, want my-component", node.Tag)
	}
	if node.Props["class"] != "custom" {
		t.Errorf("class = %v, want custom", node.Props["class"])
	}
	if node.Props["data-value"] != "test" {
		t.Errorf("data-value = %v, want test", node.Props["data-value"])
	}
}
