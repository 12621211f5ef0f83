// internal/httpserver/server.go
//
// HTTP server wiring for the dungeon backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/games".
//   - Game endpoints mounted under /game (see routes_game.go).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - There is no authentication: game and player ids are opaque
//     capability strings carried in every payload.

package httpserver

import (
	"database/sql"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/lycan-game/lycan-server/internal/history"
	"github.com/lycan-game/lycan-server/internal/store"
)

// Options tune per-session behavior.
type Options struct {
	// PregenRadius pre-seeds every round's map with a pruned diamond of
	// this radius. 0 grows the dungeon from the single exit room.
	PregenRadius int
	// Seed, when non-zero, makes every session's random source
	// deterministic. Leave 0 outside of tests.
	Seed int64
}

// Server bundles router, in-memory session store, and round history.
type Server struct {
	r    *chi.Mux
	st   store.Store
	hist *history.Store
	opts Options
}

// New constructs a Server, installs middleware, and registers routes.
// db may be nil; round history is then disabled.
func New(st store.Store, db *sql.DB, opts Options) *Server {
	s := &Server{r: chi.NewRouter(), st: st, hist: history.NewStore(db), opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"lycan-server","endpoints":["/health","POST /game/new","POST /game/join","POST /game/update","GET /game/public","GET /game/history"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Debug: live session count
	s.r.Get("/debug/games", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"games":` + strconv.Itoa(s.st.Len(r.Context())) + `}`))
	})

	s.mountGame(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := getEnv("CLIENT_ORIGIN", "http://localhost:5173")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- small util --------------------------------

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
