package httpserver

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// render buffers the page so a template error still yields a clean 500.
func (s *HTTPServer) render(w http.ResponseWriter, r *http.Request, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		s.logger.Error(r.Context(), "render failed", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *HTTPServer) index(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, func(b *bytes.Buffer) error { return s.catalogue.RenderIndex(b) })
}

func (s *HTTPServer) article(w http.ResponseWriter, r *http.Request) {
	a, ok := s.catalogue.Article(chi.URLParam(r, "slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	s.render(w, r, func(b *bytes.Buffer) error { return s.catalogue.RenderArticle(b, a) })
}

func (s *HTTPServer) healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn(ctx, "database unreachable", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
