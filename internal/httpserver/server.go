// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle backend. This is the transport the
// browser shell talks to; it renders nothing itself.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     access logging).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game,
//     DELETE /game.
//   - Graceful shutdown on context cancellation.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so the session cookie works).
//   - One current game per session; a new game replaces the last one.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

// Options configures a Server.
type Options struct {
	SessionSecret  string
	DailySalt      string
	ClientOrigin   string
	RequestTimeout time.Duration
	SecureCookies  bool
	Now            func() time.Time // defaults to time.Now
}

// Server bundles router, session store, and word list.
type Server struct {
	r        *chi.Mux
	store    store.Store
	words    words.List
	sessions *sessions
	locks    sessionLocks
	salt     string
	now      func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, list words.List, opts Options) *Server {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	s := &Server{
		r:        chi.NewRouter(),
		store:    st,
		words:    list,
		sessions: &sessions{secret: []byte(opts.SessionSecret), secure: opts.SecureCookies, now: now},
		salt:     opts.DailySalt,
		now:      now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)             // add X-Request-ID
	s.r.Use(chimw.RealIP)                // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger)) // request-scoped logger
	s.r.Use(accessLog)                   // one line per request
	s.r.Use(chimw.Recoverer)             // recover from panics
	s.r.Use(chimw.Timeout(timeout))      // bound handler time
	s.r.Use(jsonContentType)             // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"service":   "wordle-go",
			"endpoints": []string{"/health", "POST /game/new", "POST /game/guess", "GET /game", "DELETE /game"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	})

	s.mountGame(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no route for "+r.URL.Path)
	})

	return s
}

// Handler exposes the router (useful for tests and embedding).
func (s *Server) Handler() http.Handler { return s.r }

// Run serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- hs.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ----------------------------- middleware ----------------------------------

// accessLog writes one line per request through the request-scoped logger.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("request_id", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
})

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------- errors ------------------------------------

type errorRes struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeError sends a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorRes{Error: msg, Code: code})
}
