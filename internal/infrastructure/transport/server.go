// Package transport carries IPC frames between front-ends and the host over
// WebSocket, and exposes a small HTTP control surface for the CLI.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/domain/entity"
	"github.com/bnema/hostd/internal/infrastructure/windowing"
	"github.com/bnema/hostd/internal/ipc"
	"github.com/bnema/hostd/internal/logging"
)

const (
	defaultShutdownTimeout = 5 * time.Second
	readHeaderTimeout      = 10 * time.Second
	requestBuffer          = 128
)

// Windows is the part of the window manager the transport drives.
type Windows interface {
	Attach(ctx context.Context, token string, sink windowing.EventSink) (port.FrontendID, *windowing.Window, error)
	Detach(ctx context.Context, frontend port.FrontendID)
	Focus(frontend port.FrontendID) error
	Blur(frontend port.FrontendID) error
	Navigate(ctx context.Context, frontend port.FrontendID, url string) (bool, error)
	CreateChildWindow(ctx context.Context, parent port.WindowID) (port.Window, error)
	Count() int
}

// Lifecycle creates windows and opens files for the control endpoints.
type Lifecycle interface {
	NewWindow(ctx context.Context) (port.Window, error)
	OpenFile(ctx context.Context, path string) error
}

// Config holds server settings.
type Config struct {
	Address         string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Server accepts front-end connections and implements ipc.RequestSource.
type Server struct {
	cfg       Config
	windows   Windows
	lifecycle Lifecycle
	requests  chan ipc.Envelope
	upgrader  websocket.Upgrader
	handler   http.Handler

	mu       sync.Mutex
	listener net.Listener

	baseCtx     context.Context
	cancelConns context.CancelFunc
}

var _ ipc.RequestSource = (*Server)(nil)

// NewServer creates a server. Call Listen then Serve, or mount Handler.
func NewServer(ctx context.Context, cfg Config, windows Windows, lifecycle Lifecycle) *Server {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	s := &Server{
		cfg:       cfg,
		windows:   windows,
		lifecycle: lifecycle,
		requests:  make(chan ipc.Envelope, requestBuffer),
	}
	s.baseCtx, s.cancelConns = context.WithCancel(logging.WithComponent(ctx, "transport"))
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	s.handler = s.routes()
	return s
}

// Requests implements ipc.RequestSource. The channel is never closed; the
// router stops on context cancellation.
func (s *Server) Requests() <-chan ipc.Envelope {
	return s.requests
}

// Handler returns the HTTP handler serving /ws and the control endpoints.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/ws", s.handleWS)
	r.Get("/healthz", s.handleHealth)
	r.Post("/open", s.handleOpen)
	r.Post("/windows", s.handleNewWindow)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logging.FromContext(s.baseCtx).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("http request")
	})
}

// checkOrigin accepts requests without an Origin header (native front-ends)
// and otherwise requires an allowed origin. An empty allow list admits all.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(s.cfg.AllowedOrigins) == 0 {
		return true
	}
	return slices.Contains(s.cfg.AllowedOrigins, origin)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ctx := s.baseCtx
	token := r.URL.Query().Get("window")
	if token == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing window token"))
		return
	}
	if !s.checkOrigin(r) {
		writeError(w, http.StatusForbidden, errors.New("origin not allowed"))
		return
	}

	c := newConn(s)
	frontend, window, err := s.windows.Attach(ctx, token, c)
	if err != nil {
		status := http.StatusForbidden
		if errors.Is(err, windowing.ErrAlreadyAttached) {
			status = http.StatusConflict
		}
		writeError(w, status, err)
		return
	}
	c.frontend = frontend

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("websocket upgrade failed")
		c.close()
		s.windows.Detach(ctx, frontend)
		return
	}
	c.ws = ws

	connCtx := logging.WithWindowID(ctx, uint64(window.ID()))
	go c.writePump(connCtx)
	go c.readPump(connCtx)
}

type healthResponse struct {
	Status  string `json:"status"`
	Windows int    `json:"windows"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Windows: s.windows.Count()})
}

// OpenRequest is the body of POST /open.
type OpenRequest struct {
	Path string `json:"path"`
}

func (s *Server) handleOpen(w http.ResponseWriter, r *http.Request) {
	var body OpenRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}
	if strings.TrimSpace(body.Path) == "" {
		writeError(w, http.StatusBadRequest, errors.New("path is required"))
		return
	}

	if err := s.lifecycle.OpenFile(s.baseCtx, body.Path); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, entity.ErrNoWindowAvailable) {
			status = http.StatusConflict
		}
		writeError(w, status, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NewWindowRequest is the optional body of POST /windows. A non-zero Parent
// creates a child window, which the navigation guard leaves alone.
type NewWindowRequest struct {
	Parent uint64 `json:"parent,omitempty"`
}

// WindowResponse is the body returned by POST /windows.
type WindowResponse struct {
	ID         uint64 `json:"id"`
	Parent     uint64 `json:"parent,omitempty"`
	Token      string `json:"token"`
	ConnectURL string `json:"connect_url,omitempty"`
}

type tokenHolder interface {
	Token() string
}

func (s *Server) handleNewWindow(w http.ResponseWriter, r *http.Request) {
	var body NewWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode body: %w", err))
		return
	}

	var (
		window port.Window
		err    error
	)
	if body.Parent != 0 {
		window, err = s.windows.CreateChildWindow(s.baseCtx, port.WindowID(body.Parent))
	} else {
		window, err = s.lifecycle.NewWindow(s.baseCtx)
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, windowing.ErrWindowNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}

	resp := WindowResponse{ID: uint64(window.ID()), Parent: body.Parent}
	if holder, ok := window.(tokenHolder); ok {
		resp.Token = holder.Token()
		if s.Addr() != "" {
			resp.ConnectURL = s.ConnectURL(resp.Token)
		}
	}
	writeJSON(w, http.StatusCreated, resp)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// Listen binds the configured address.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Address, err)
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	return nil
}

// Addr returns the bound address, or "" before Listen.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// ConnectURL returns the WebSocket URL a front-end uses to attach to the
// window owning token.
func (s *Server) ConnectURL(token string) string {
	return ConnectURL(s.Addr(), token)
}

// ConnectURL builds the WebSocket URL for addr and token.
func ConnectURL(addr, token string) string {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	q := u.Query()
	q.Set("window", token)
	u.RawQuery = q.Encode()
	return u.String()
}

// Serve blocks serving HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln == nil {
		return errors.New("server is not listening")
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return s.baseCtx },
	}

	errCh := make(chan error, 1)
	go func() {
		logging.FromContext(s.baseCtx).Info().Str("addr", ln.Addr().String()).Msg("server listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	// Hijacked WebSocket connections are not tracked by Shutdown.
	s.cancelConns()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
