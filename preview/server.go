package preview

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/matthiasbeyer/type-description/desc"
	"github.com/matthiasbeyer/type-description/render"
)

// Server serves rendered schema documentation from a directory of JSON
// schema files.
type Server struct {
	addr string
	dir  string

	logger       zerolog.Logger
	readTimeout  time.Duration
	writeTimeout time.Duration
	rate         int
	burst        int

	hub *hub

	mu         sync.RWMutex
	schemas    map[string]desc.TypeDescription
	listenAddr string
	server     *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. The default discards all output.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithReadTimeout sets the HTTP read timeout.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.readTimeout = d
	}
}

// WithWriteTimeout sets the HTTP write timeout.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.writeTimeout = d
	}
}

// WithRateLimit enables per-client rate limiting, in requests per second
// with the given burst allowance.
func WithRateLimit(rate, burst int) Option {
	return func(s *Server) {
		s.rate = rate
		s.burst = burst
	}
}

// New creates a Server listening on addr and serving the schema files in
// dir.
func New(addr, dir string, opts ...Option) *Server {
	s := &Server{
		addr:         addr,
		dir:          dir,
		logger:       zerolog.Nop(),
		readTimeout:  10 * time.Second,
		writeTimeout: 10 * time.Second,
		schemas:      make(map[string]desc.TypeDescription),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hub = newHub(s.logger, s.writeTimeout)
	return s
}

// ListenAddr returns the actual address the server is listening on, which
// is useful when addr was ":0".
func (s *Server) ListenAddr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listenAddr
}

// Handler returns the full HTTP handler, including middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /schema/{name}", s.handleSchema)
	mux.HandleFunc("GET /reload", s.hub.handle)

	var handler http.Handler = mux
	if s.rate > 0 {
		handler = rateLimit(s.rate, s.burst, s.logger)(handler)
	}
	handler = observe("typedesc-docs")(handler)
	return handler
}

// Serve loads the schema directory, starts the file watcher and serves
// HTTP until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	if err := s.reload(); err != nil {
		return err
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s.mu.Lock()
	s.listenAddr = listener.Addr().String()
	s.server = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.readTimeout,
		WriteTimeout: s.writeTimeout,
	}
	s.mu.Unlock()

	watchErr := make(chan error, 1)
	go func() {
		watchErr <- s.watch(ctx)
	}()

	serveErr := make(chan error, 1)
	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	s.logger.Info().Str("addr", s.ListenAddr()).Str("dir", s.dir).Msg("preview server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.hub.closeAll()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-watchErr
	case err := <-serveErr:
		return err
	case err := <-watchErr:
		if err != nil {
			return err
		}
		return nil
	}
}

// reload re-reads the schema directory and notifies connected clients.
func (s *Server) reload() error {
	schemas, err := render.LoadDir(s.dir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.schemas = schemas
	s.mu.Unlock()

	s.logger.Debug().Int("schemas", len(schemas)).Msg("schema directory loaded")
	s.hub.broadcast("reload")
	return nil
}

func (s *Server) schema(name string) (desc.TypeDescription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.schemas[name]
	return d, ok
}

func (s *Server) names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.schemas))
	for name := range s.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	fmt.Fprintf(w, "# Schemas\n\n")
	for _, name := range s.names() {
		fmt.Fprintf(w, "- [%s](/schema/%s)\n", name, name)
	}
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	d, ok := s.schema(name)
	if !ok {
		http.Error(w, fmt.Sprintf("unknown schema %q", name), http.StatusNotFound)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "md", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		fmt.Fprint(w, render.Markdown(d))
	case "json":
		data, err := render.JSON(d)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	default:
		http.Error(w, "unknown format", http.StatusBadRequest)
	}
}
