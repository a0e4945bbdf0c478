// Package preview hosts composed share images on a loopback HTTP server so
// the browser can show them. At most one image is published at a time.
package preview

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"gh-wrapped/internal/metrics"
)

var ErrNotListening = errors.New("preview server is not listening")

// Server owns the published blob. Publishing a new image releases the
// previous one.
type Server struct {
	mu      sync.Mutex
	id      string
	blob    []byte
	ln      net.Listener
	baseURL string
}

func New() *Server {
	return &Server{}
}

// Handler exposes the preview and metrics routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/preview/{id}", s.handlePreview)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	var blob []byte
	if id == s.id {
		blob = s.blob
	}
	s.mu.Unlock()

	if blob == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(blob)
}

// Listen binds addr. Port 0 picks a free port.
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.mu.Lock()
	s.ln = ln
	s.baseURL = "http://" + ln.Addr().String()
	s.mu.Unlock()
	log.Debug().Str("addr", ln.Addr().String()).Msg("Preview server listening")
	return nil
}

// Serve blocks until ctx ends, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()
	if ln == nil {
		return ErrNotListening
	}

	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("preview server: %w", err)
		}
	}

	s.Revoke()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Publish makes png available under a fresh URL and releases any previously
// published image.
func (s *Server) Publish(png []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return "", ErrNotListening
	}
	if s.blob == nil {
		metrics.PreviewBlobsLive.Inc()
	}
	s.id = uuid.NewString()
	s.blob = png
	return s.baseURL + "/preview/" + s.id, nil
}

// Revoke releases the published image. Its URL stops resolving.
func (s *Server) Revoke() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blob != nil {
		metrics.PreviewBlobsLive.Dec()
	}
	s.id = ""
	s.blob = nil
}
