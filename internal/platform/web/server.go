package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

//go:embed static
var staticFiles embed.FS

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// MaxSessions caps concurrent games; 0 means unlimited.
	MaxSessions int

	// Seed fixes the food RNG of every game; 0 seeds each game from the clock.
	Seed int64
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:     ":8080",
		MaxSessions: 64,
	}
}

// Server serves the game page and one game per websocket connection.
type Server struct {
	config   ServerConfig
	game     config.SnakeConfig
	logger   *log.Logger
	upgrader websocket.Upgrader

	ctx      context.Context // Parent of every session; canceled on shutdown
	cancel   context.CancelFunc
	mu       sync.Mutex // Guards closing and slot reservation
	closing  bool
	sessions sync.WaitGroup
	active   atomic.Int64
}

// NewServer creates a web server for the given game configuration.
func NewServer(cfg ServerConfig, game config.SnakeConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		config: cfg,
		game:   game,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     sameOrigin,
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

// sameOrigin accepts non-browser clients and pages served by this host.
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err) // embedded directory always exists
	}
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFileFS(w, r, static, "index.html")
	})
	r.Get("/healthz", s.handleHealth)
	r.Get("/ws", s.handleWS)

	return r
}

// requestLogger logs each request once it completes.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.active.Load(),
	})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	if !s.reserve() {
		http.Error(w, "too many games", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.release()
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	id := uuid.NewString()
	logger := s.logger.With("session", id)
	sess, err := NewSession(id, conn, s.game, s.runtimeConfig(), logger)
	if err != nil {
		s.release()
		logger.Error("cannot create game", "error", err)
		conn.Close()
		return
	}

	logger.Info("session started", "remote", r.RemoteAddr)

	go func() {
		defer s.release()
		start := time.Now()
		if err := sess.Run(s.ctx); err != nil {
			logger.Warn("session failed", "error", err)
		}
		logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}()
}

// reserve claims a game slot. It fails when the server is full or
// shutting down.
func (s *Server) reserve() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closing {
		return false
	}
	if limit := s.config.MaxSessions; limit > 0 && s.active.Load() >= int64(limit) {
		return false
	}
	s.active.Add(1)
	s.sessions.Add(1)
	return true
}

// release frees a slot claimed by reserve.
func (s *Server) release() {
	s.active.Add(-1)
	s.sessions.Done()
}

// stopSessions refuses new games, ends running ones and waits for them.
func (s *Server) stopSessions() {
	s.mu.Lock()
	s.closing = true
	s.mu.Unlock()

	s.cancel()
	s.sessions.Wait()
}

// runtimeConfig returns the runtime config for a new game. Sessions fill
// in the canvas size.
func (s *Server) runtimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: s.game.Loop.TickRate,
		Seed:     s.config.Seed,
	}
}

// ListenAndServe serves on the configured address until ctx is done,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("web: listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("starting web server", "address", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.stopSessions()
		if err != nil {
			return fmt.Errorf("web: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.shutdown(srv)
}

// shutdown stops accepting requests and ends every running game.
func (s *Server) shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := srv.Shutdown(ctx)
	s.stopSessions()
	return err
}

// Sessions returns the number of running games.
func (s *Server) Sessions() int {
	return int(s.active.Load())
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Client may have gone away
	json.NewEncoder(w).Encode(data)
}
