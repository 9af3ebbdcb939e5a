package server

import (
	"context"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/minireact/internal/config"
	"github.com/vango-dev/minireact/internal/dev"
	"github.com/vango-dev/minireact/internal/errors"
	"github.com/vango-dev/minireact/pkg/middleware"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server serves a minireact app directory.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	root     string
	fsys     fs.FS
	registry *prometheus.Registry
	metrics  *middleware.Metrics
	reload   *dev.ReloadServer
	router   chi.Router

	mu      sync.Mutex
	httpSrv *http.Server
	addr    net.Addr
	ready   chan struct{}
	started bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry sets the registry metrics are registered with and served from.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = registry
	}
}

// WithFS serves files from fsys instead of the configured root directory.
func WithFS(fsys fs.FS) Option {
	return func(s *Server) {
		s.fsys = fsys
	}
}

// New creates a server for cfg. The root directory must exist unless WithFS
// is given.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		cfg:   cfg,
		root:  cfg.RootPath(),
		ready: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	if s.fsys == nil {
		info, err := os.Stat(s.root)
		if err != nil || !info.IsDir() {
			e := errors.New("E141").
				WithDetailf("%s is not a directory", s.root).
				WithSuggestion("Pass --root or set \"root\" in minireact.json")
			if err != nil {
				e = e.Wrap(err)
			}
			return nil, e
		}
		s.fsys = os.DirFS(s.root)
	}

	if cfg.Metrics.Enabled {
		if s.registry == nil {
			s.registry = prometheus.NewRegistry()
			s.registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
		}
		s.metrics = middleware.NewMetrics(metricsOptions(cfg.Metrics, s.registry)...)
	}
	if cfg.Dev.LiveReload {
		s.reload = dev.NewReloadServer(s.logger)
	}

	s.router = s.routes()
	return s, nil
}

func metricsOptions(cfg config.MetricsConfig, registry prometheus.Registerer) []middleware.MetricsOption {
	opts := []middleware.MetricsOption{
		middleware.WithRegistry(registry),
		middleware.WithSubsystem(cfg.Subsystem),
	}
	if len(cfg.Labels) > 0 {
		opts = append(opts, middleware.WithConstLabels(prometheus.Labels(cfg.Labels)))
	}
	if len(cfg.Buckets) > 0 {
		opts = append(opts, middleware.WithBuckets(cfg.Buckets))
	}
	return opts
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimw.Recoverer)
	if s.metrics != nil {
		r.Use(s.metrics.Handler)
	}
	if s.cfg.Tracing.Enabled {
		r.Use(middleware.Tracing(
			middleware.WithTracerName("minireact/server"),
			middleware.WithRequestFilter(func(req *http.Request) bool {
				return req.URL.Path != "/healthz"
			}),
		))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	if s.registry != nil {
		r.Handle(s.cfg.Metrics.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
			Registry: s.registry,
		}))
	}
	if s.reload != nil {
		r.Handle(dev.ReloadPath, s.reload)
	}

	r.Get("/", s.serveEntry)
	r.Head("/", s.serveEntry)
	r.HandleFunc("/*", s.serveStatic)
	return r
}

// requestLogger logs each request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.logger.Enabled(r.Context(), slog.LevelDebug) {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the metrics collector, or nil when metrics are disabled.
func (s *Server) Metrics() *middleware.Metrics {
	return s.metrics
}

// Reload returns the live reload server, or nil when live reload is off.
func (s *Server) Reload() *dev.ReloadServer {
	return s.reload
}

// Addr returns the address the server is listening on once Run has started
// listening, or nil.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Ready is closed once the listener is open.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully. When live reload is on the root directory is
// watched for the lifetime of the server. A Server runs at most once.
func (s *Server) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return errors.New("E140").
			WithDetail("Server already started").
			WithSuggestion("Create a new server with New")
	}
	s.started = true
	s.mu.Unlock()

	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return errors.New("E140").
			WithDetailf("Could not listen on %s", s.cfg.Address()).
			WithSuggestion("Use --port to pick a free port").
			Wrap(err)
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Lock()
	s.httpSrv = srv
	s.addr = ln.Addr()
	s.mu.Unlock()
	close(s.ready)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.reload != nil {
		defer s.reload.Close()
		go s.watch(ctx)
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("serving", "url", "http://"+ln.Addr().String(), "root", s.root)
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.FromError(err, "E140")
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, done := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			srv.Close()
			return errors.FromError(err, "E140")
		}
		return nil
	}
}

// watch reloads connected browsers when files under the root change. It runs
// until ctx is done.
func (s *Server) watch(ctx context.Context) {
	ignore := append([]string{}, dev.DefaultIgnore...)
	ignore = append(ignore, s.cfg.Dev.Ignore...)

	w := dev.NewWatcher(dev.WatcherConfig{
		Paths:    []string{s.root},
		Ignore:   ignore,
		Debounce: s.cfg.DebounceDuration(),
		Logger:   s.logger,
	})
	w.OnChange(func(changes []dev.Change) {
		s.logger.Info("files changed", "count", len(changes))
		s.reload.NotifyChanges(changes)
	})
	if err := w.Start(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
		s.logger.Warn("live reload disabled", "error", err)
	}
}
