package render

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seldom-dev/seldom/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	page := Page{
		Title:       "Docs",
		Stylesheets: []string{"/static/app.css"},
		Head:        []*vdom.VNode{vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width"))},
		Body:        vdom.El("main#app", vdom.El("h1", "Docs")),
		Scripts:     []string{"<script>reload()</script>"},
	}

	var buf bytes.Buffer
	if err := NewRenderer(RendererConfig{}).RenderPage(&buf, page); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		`<meta charset="utf-8">`,
		"<title>Docs</title>",
		`<link rel="stylesheet" href="/static/app.css">`,
		`<main id="app"><h1>Docs</h1></main>`,
		"<script>reload()</script>",
		"</body>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page output missing %q:\n%s", want, html)
		}
	}
}

func TestRenderPageEscapesTitle(t *testing.T) {
	var buf bytes.Buffer
	page := Page{Title: "<Danger>", Body: vdom.Div()}
	if err := NewRenderer(RendererConfig{}).RenderPage(&buf, page); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !strings.Contains(buf.String(), "<title>&lt;Danger&gt;</title>") {
		t.Errorf("title not escaped:\n%s", buf.String())
	}
}

func TestRenderPageMetaSorted(t *testing.T) {
	page := Page{
		Meta: map[string]string{
			"viewport":    "width=device-width",
			"author":      "seldom",
			"description": "demo",
		},
		Body: vdom.Div(),
	}

	var buf bytes.Buffer
	if err := NewRenderer(RendererConfig{}).RenderPage(&buf, page); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	html := buf.String()

	order := []string{`name="author"`, `name="description"`, `name="viewport"`}
	last := -1
	for _, name := range order {
		i := strings.Index(html, name)
		if i < 0 {
			t.Fatalf("meta %s missing:\n%s", name, html)
		}
		if i < last {
			t.Errorf("meta tags not in sorted order:\n%s", html)
		}
		last = i
	}
}

func TestStreamingRendererFlushes(t *testing.T) {
	var buf bytes.Buffer
	fw := &FlushableWriter{Writer: &buf}

	s := &StreamingRenderer{
		Renderer: NewRenderer(RendererConfig{}),
		flusher:  fw,
		w:        fw,
	}
	if err := s.RenderPage(Page{Title: "T", Body: vdom.Div(vdom.Text("x"))}); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if fw.FlushCount < 2 {
		t.Errorf("FlushCount = %d, want at least 2", fw.FlushCount)
	}
	if !strings.Contains(buf.String(), "<div>x</div>") {
		t.Errorf("body missing from stream:\n%s", buf.String())
	}
}

func TestNewStreamingRenderer(t *testing.T) {
	rec := httptest.NewRecorder()
	s := NewStreamingRenderer(rec, RendererConfig{})

	if err := s.RenderPage(Page{Title: "T", Body: vdom.El("main", "x")}); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if !rec.Flushed {
		t.Error("recorder was never flushed")
	}
	if !strings.Contains(rec.Body.String(), "<main>x</main>") {
		t.Errorf("body missing from stream:\n%s", rec.Body.String())
	}
}
