package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pochita1998/velocity-framework/pkg/dom"
	"github.com/pochita1998/velocity-framework/pkg/hydrate"
	"github.com/pochita1998/velocity-framework/pkg/render"
	"github.com/pochita1998/velocity-framework/pkg/resource"
	"github.com/pochita1998/velocity-framework/pkg/snapshot"
	"github.com/pochita1998/velocity-framework/pkg/telemetry"
	"github.com/pochita1998/velocity-framework/pkg/velocity"
)

// RootFunc builds the application's DOM tree for one render pass.
// Generated code drives doc through the dom capability interface.
type RootFunc func(doc *dom.MemoryDocument) (*dom.Node, error)

// Server renders the application on the server side and serves the
// hydration, metrics, and devtools endpoints around it.
type Server struct {
	config *Config

	rt    *velocity.Runtime
	cache *resource.Cache
	root  RootFunc

	store    snapshot.Store
	registry *prometheus.Registry
	renderer *render.Renderer
	router   chi.Router

	httpServer *http.Server
	logger     *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithSnapshotStore sets the snapshot persistence backend. Without one,
// state is not persisted across restarts.
func WithSnapshotStore(store snapshot.Store) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a Server rendering root with the given runtime and cache.
func New(config *Config, rt *velocity.Runtime, cache *resource.Cache, root RootFunc, opts ...Option) *Server {
	s := &Server{
		config:   config.withDefaults(),
		rt:       rt,
		cache:    cache,
		root:     root,
		registry: prometheus.NewRegistry(),
		renderer: render.NewRenderer(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default().With("component", "server")
	}

	if _, err := telemetry.Register(rt, cache, telemetry.WithRegistry(s.registry)); err != nil {
		s.logger.Error("metrics registration failed", "error", err)
	}

	s.router = s.buildRouter()
	return s
}

// Router returns the HTTP handler, for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/state", s.handleState)
	r.Get("/healthz", s.handleHealth)
	r.Get("/devtools/ws", s.handleDevtools)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// handleIndex renders the application and serves the complete page,
// hydration markers and state snapshot included.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc := dom.NewMemoryDocument()
	rootNode, err := s.root(doc)
	if err != nil {
		s.logger.Error("render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	page := &render.Page{
		Title:      s.config.Title,
		Root:       rootNode,
		Snapshot:   hydrate.Serialize(s.rt, s.cache),
		RuntimeSrc: s.config.RuntimeSrc,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderPageToWriter(w, page); err != nil {
		s.logger.Error("page write failed", "error", err)
	}
}

// handleState serves the current snapshot as JSON.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	encoded, err := hydrate.Encode(hydrate.Serialize(s.rt, s.cache))
	if err != nil {
		http.Error(w, "snapshot failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(encoded)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Start restores persisted state if a store is configured, then serves
// until ctx is cancelled, shutting down gracefully and persisting the
// final snapshot.
func (s *Server) Start(ctx context.Context) error {
	if err := s.restoreState(ctx); err != nil {
		s.logger.Warn("state restore failed", "error", err)
	}

	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Address)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown stops the HTTP server and persists the final snapshot.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	var firstErr error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}

	if err := s.persistState(ctx); err != nil {
		s.logger.Error("state persist failed", "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	s.logger.Info("shutdown complete")
	return firstErr
}

// restoreState loads and replays the persisted snapshot, if any.
func (s *Server) restoreState(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	data, err := s.store.Load(ctx, s.config.SnapshotKey)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if data == nil {
		return nil
	}

	snap, err := hydrate.Decode(data)
	if err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	hydrate.Deserialize(s.rt, s.cache, snap)
	s.logger.Info("state restored",
		"signals", len(snap.Signals), "resources", len(snap.Resources))
	return nil
}

// persistState saves the current snapshot, if a store is configured.
func (s *Server) persistState(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	encoded, err := hydrate.Encode(hydrate.Serialize(s.rt, s.cache))
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return s.store.Save(ctx, s.config.SnapshotKey, encoded)
}
