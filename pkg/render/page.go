package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/seldom-dev/seldom/pkg/vdom"
)

// Page describes a complete HTML document.
type Page struct {
	// Lang is the document language (default "en").
	Lang string

	// Title is the document title.
	Title string

	// Meta holds name/content pairs rendered as <meta> tags.
	// A charset meta tag is always emitted first.
	Meta map[string]string

	// Stylesheets are hrefs rendered as <link rel="stylesheet"> tags.
	Stylesheets []string

	// Head holds extra nodes appended to <head>.
	Head []*vdom.VNode

	// Body is the document body content.
	Body *vdom.VNode

	// Scripts are raw HTML blocks injected before </body>. Used by
	// the preview server for the live-reload client.
	Scripts []string
}

// RenderPage renders a complete HTML document to the writer.
func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}

	if err := r.renderHead(w, page); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	for _, script := range page.Scripts {
		if _, err := io.WriteString(w, script); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

// renderHead renders the <head> section.
func (r *Renderer) renderHead(w io.Writer, page Page) error {
	if _, err := io.WriteString(w, "<head>\n<meta charset=\"utf-8\">\n"); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeText(page.Title)); err != nil {
			return err
		}
	}

	// Meta tags in sorted order so rendered documents are stable.
	names := make([]string, 0, len(page.Meta))
	for name := range page.Meta {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "<meta name=\"%s\" content=\"%s\">\n",
			escapeAttr(name), escapeAttr(page.Meta[name])); err != nil {
			return err
		}
	}

	for _, href := range page.Stylesheets {
		if _, err := fmt.Fprintf(w, "<link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href)); err != nil {
			return err
		}
	}

	for _, node := range page.Head {
		if err := r.RenderToWriter(w, node); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}
