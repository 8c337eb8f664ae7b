package render

import (
	"strings"
	"testing"

	"github.com/seldom-dev/seldom/pkg/vdom"
)

func renderString(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	html, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	return html
}

func TestRenderElement(t *testing.T) {
	t.Run("simple element", func(t *testing.T) {
		got := renderString(t, vdom.El("p", "hi"))
		if got != "<p>hi</p>" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("selector id and classes", func(t *testing.T) {
		got := renderString(t, vdom.El("section#hero.dark.wide"))
		if got != `<section class="dark wide" id="hero"></section>` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("nested children in order", func(t *testing.T) {
		got := renderString(t, vdom.El("ul", vdom.El("li", "x"), vdom.El("li", "y")))
		if got != "<ul><li>x</li><li>y</li></ul>" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("void element self-closes", func(t *testing.T) {
		got := renderString(t, vdom.El("input", vdom.Props{"type": "email"}))
		if got != `<input type="email">` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("boolean attribute renders by presence", func(t *testing.T) {
		got := renderString(t, vdom.El("input", vdom.Props{"type": "email", "required": true}))
		if got != `<input required type="email">` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("false boolean attribute omitted", func(t *testing.T) {
		got := renderString(t, vdom.El("input", vdom.Props{"disabled": false}))
		if got != "<input>" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("attributes sorted for determinism", func(t *testing.T) {
		node := vdom.El("a", vdom.Props{"target": "_blank", "href": "/x", "rel": "noopener"})
		got := renderString(t, node)
		if got != `<a href="/x" rel="noopener" target="_blank"></a>` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("numeric attribute values", func(t *testing.T) {
		got := renderString(t, vdom.El("td", vdom.Colspan(2)))
		if got != `<td colspan="2"></td>` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("internal props skipped", func(t *testing.T) {
		got := renderString(t, vdom.El("div", vdom.Props{"_internal": "x"}))
		if got != "<div></div>" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("attribute values escaped", func(t *testing.T) {
		got := renderString(t, vdom.El("a", vdom.Props{"title": `say "hi" & bye`}))
		if got != `<a title="say &quot;hi&quot; &amp; bye"></a>` {
			t.Errorf("got %q", got)
		}
	})
}

func TestEscapeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"<script>", "&lt;script&gt;"},
		{"a & b", "a &amp; b"},
		{`"quoted"`, "&quot;quoted&quot;"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := escapeText(tt.in); got != tt.want {
			t.Errorf("escapeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`x="y"`, "x=&quot;y&quot;"},
		{"a & b", "a &amp; b"},
		{"a\nb", "a&#10;b"},
		{"a\rb", "a&#13;b"},
		{"a\tb", "a&#9;b"},
	}
	for _, tt := range tests {
		if got := escapeAttr(tt.in); got != tt.want {
			t.Errorf("escapeAttr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderText(t *testing.T) {
	t.Run("text is escaped", func(t *testing.T) {
		got := renderString(t, vdom.El("p", `<b>&"bold"</b>`))
		if got != "<p>&lt;b&gt;&amp;&quot;bold&quot;&lt;/b&gt;</p>" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("raw is not escaped", func(t *testing.T) {
		got := renderString(t, vdom.Raw("<b>bold</b>"))
		if got != "<b>bold</b>" {
			t.Errorf("got %q", got)
		}
	})
}

func TestRenderFragment(t *testing.T) {
	got := renderString(t, vdom.Fragment(vdom.El("li", "a"), vdom.El("li", "b")))
	if got != "<li>a</li><li>b</li>" {
		t.Errorf("got %q", got)
	}
}

func TestRenderNil(t *testing.T) {
	got := renderString(t, nil)
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestRenderPretty(t *testing.T) {
	r := NewRenderer(RendererConfig{Pretty: true})
	html, err := r.RenderToString(vdom.El("div", vdom.El("p", "hi")))
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	if !strings.Contains(html, "\n") {
		t.Errorf("pretty output has no newlines: %q", html)
	}
	if !strings.Contains(html, "  <p>") {
		t.Errorf("pretty output not indented: %q", html)
	}
}

func TestAttrToString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"s", "s"},
		{true, "true"},
		{false, "false"},
		{7, "7"},
		{int64(8), "8"},
		{1.5, "1.5"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := attrToString(tt.in); got != tt.want {
			t.Errorf("attrToString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
