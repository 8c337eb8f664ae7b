// Package export writes a site to disk as static HTML, one
// directory-index file per route.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seldom-dev/seldom/pkg/preview"
	"github.com/seldom-dev/seldom/pkg/render"
)

// Options configures a static export.
type Options struct {
	// OutDir is the output directory. It is created if missing;
	// existing files are overwritten.
	OutDir string

	// Pretty enables pretty-printed HTML output.
	Pretty bool
}

// Export renders every page of the site into opts.OutDir. Routes map
// to directory-index files: "/" becomes index.html, "/about" becomes
// about/index.html, so the tree can be served by any static host.
func Export(site preview.Site, opts Options) error {
	if opts.OutDir == "" {
		return fmt.Errorf("export: output directory not set")
	}

	renderer := render.NewRenderer(render.RendererConfig{Pretty: opts.Pretty})

	for _, page := range site {
		path, err := outputPath(opts.OutDir, page.Route)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("export %s: %w", page.Route, err)
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("export %s: %w", page.Route, err)
		}

		doc := render.Page{
			Title: page.Title,
			Body:  page.Render(),
		}
		if err := renderer.RenderPage(f, doc); err != nil {
			f.Close()
			return fmt.Errorf("export %s: %w", page.Route, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("export %s: %w", page.Route, err)
		}
	}

	return nil
}

// outputPath maps a route to its file under outDir.
func outputPath(outDir, route string) (string, error) {
	trimmed := strings.Trim(route, "/")
	if strings.Contains(trimmed, "..") {
		return "", fmt.Errorf("export: route %q escapes output directory", route)
	}
	if trimmed == "" {
		return filepath.Join(outDir, "index.html"), nil
	}
	return filepath.Join(outDir, filepath.FromSlash(trimmed), "index.html"), nil
}
