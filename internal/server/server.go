package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mkreport/mkreport/internal/archive"
	"github.com/mkreport/mkreport/internal/config"
)

// ShutdownTimeout is the deadline for outstanding requests after a
// shutdown signal arrives.
const ShutdownTimeout = 10 * time.Second

// listLimit caps the number of renders returned by the listing endpoint.
const listLimit = 100

// Preview serves archived renders over HTTP.
type Preview struct {
	router *chi.Mux
	logger *slog.Logger
	server *http.Server
	store  *archive.Store
}

// New creates a Preview serving the given archive store on addr.
func New(logger *slog.Logger, store *archive.Store, addr string) *Preview {
	p := &Preview{
		logger: logger,
		store:  store,
	}

	router := chi.NewRouter()
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", p.handleHealth)
	router.Get("/reports", p.handleList)
	router.Get("/reports/{id}", p.handleGet)

	p.router = router
	p.server = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return p
}

// Handler returns the HTTP handler, for use with httptest.
func (p *Preview) Handler() http.Handler {
	return p.router
}

// Start runs the server until it fails or an interrupt signal arrives,
// then shuts down gracefully.
func (p *Preview) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		p.logger.Info("starting preview server", "addr", p.server.Addr)
		serverErrors <- p.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		p.logger.Info("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		err := p.server.Shutdown(ctx)
		if err != nil {
			p.logger.Error("graceful shutdown failed", "error", err)
			err = p.server.Close()
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// handleHealth reports server liveness.
func (p *Preview) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}

// renderEntry is the JSON shape of one listing entry.
type renderEntry struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Format    string `json:"format"`
	Size      int64  `json:"size"`
	SHA256    string `json:"sha256"`
	CreatedAt string `json:"created_at"`
}

// handleList returns archived renders as JSON, newest first.
func (p *Preview) handleList(w http.ResponseWriter, r *http.Request) {
	renders, err := p.store.ListRenders(r.Context(), listLimit)
	if err != nil {
		p.logger.Error("failed to list renders", "error", err)
		http.Error(w, "failed to list renders", http.StatusInternalServerError)
		return
	}

	entries := make([]renderEntry, 0, len(renders))
	for _, render := range renders {
		entries = append(entries, renderEntry{
			ID:        render.ID,
			Title:     render.Title,
			Format:    render.Format,
			Size:      render.Size,
			SHA256:    render.SHA256,
			CreatedAt: render.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		p.logger.Error("failed to encode listing", "error", err)
	}
}

// handleGet serves one archived render with its native content type.
func (p *Preview) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	render, err := p.store.GetRender(r.Context(), id)
	if errors.Is(err, archive.ErrRenderNotFound) {
		http.Error(w, "render not found", http.StatusNotFound)
		return
	}
	if err != nil {
		p.logger.Error("failed to get render", "error", err, "id", id)
		http.Error(w, "failed to get render", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType(render.Format))
	_, _ = w.Write([]byte(render.Content))
}

// contentType maps a render format to its MIME type.
func contentType(format string) string {
	switch format {
	case config.FormatHTML:
		return "text/html; charset=utf-8"
	case config.FormatJSON:
		return "application/json"
	case config.FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// requestLogger logs each request with its method, path, and duration.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_ip", r.RemoteAddr,
				"duration", time.Since(start),
			)
		})
	}
}
