package preview

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seldom-dev/seldom/pkg/middleware"
	"github.com/seldom-dev/seldom/pkg/render"
)

// Options configures the preview server.
type Options struct {
	// Host to bind to (default "localhost").
	Host string

	// Port to listen on (default 3000).
	Port int

	// LiveReload injects the reload client script into every page
	// and mounts the websocket endpoint.
	LiveReload bool

	// Pretty enables pretty-printed HTML output.
	Pretty bool

	// Metrics, when set, is mounted around every request and a
	// /metrics endpoint is exposed.
	Metrics *middleware.Metrics

	// MetricsHandler overrides the /metrics endpoint handler
	// (default: promhttp.Handler on the default registry).
	MetricsHandler http.Handler

	// Tracing enables the OpenTelemetry middleware.
	Tracing bool
}

// Server serves a Site over HTTP.
type Server struct {
	site Site
	opts Options
	hub  *ReloadHub
}

// NewServer creates a preview server for the given site.
func NewServer(site Site, opts Options) *Server {
	if opts.Host == "" {
		opts.Host = "localhost"
	}
	if opts.Port == 0 {
		opts.Port = 3000
	}
	return &Server{
		site: site,
		opts: opts,
		hub:  NewReloadHub(),
	}
}

// Hub returns the live-reload hub so watchers can push reloads.
func (s *Server) Hub() *ReloadHub {
	return s.hub
}

// Addr returns the host:port the server binds to.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)
}

// Handler builds the HTTP handler: one route per page, /metrics, and
// the live-reload websocket endpoint.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	if s.opts.Metrics != nil {
		r.Use(s.opts.Metrics.Handler)
	}
	if s.opts.Tracing {
		r.Use(middleware.Tracing())
	}

	if s.opts.Metrics != nil || s.opts.MetricsHandler != nil {
		h := s.opts.MetricsHandler
		if h == nil {
			h = promhttp.Handler()
		}
		r.Method(http.MethodGet, "/metrics", h)
	}

	if s.opts.LiveReload {
		r.Get(ReloadEndpoint, s.hub.HandleWebSocket)
	}

	for _, page := range s.site {
		r.Get(page.Route, s.pageHandler(page))
	}

	return r
}

// pageHandler renders one page per request.
func (s *Server) pageHandler(page Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := render.Page{
			Title: page.Title,
			Body:  page.Render(),
		}
		if s.opts.LiveReload {
			doc.Scripts = append(doc.Scripts, ReloadClientScript)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		renderer := render.NewStreamingRenderer(w, render.RendererConfig{Pretty: s.opts.Pretty})
		if err := renderer.RenderPage(doc); err != nil {
			log.Printf("preview: render %s: %v", page.Route, err)
		}
	}
}

// ListenAndServe runs the server until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Addr(),
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
