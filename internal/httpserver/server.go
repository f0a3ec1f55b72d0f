// internal/httpserver/server.go
//
// HTTP server wiring for the Mega-Sena generator backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Run endpoints: POST /run/new, GET /run/{id}, GET /run/{id}/download.
//   - Run history: GET /runs/recent, scoped by an anonymous cookie and read
//     from SQLite.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so the anon cookie works).
//   - History writes are best-effort: a failed insert never fails the run
//     response, it is only logged.
//   - Generation state is per-request; the only shared pieces are the run
//     store and the history DB, both concurrency-safe.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/chrystiano/mega-sena-generator/internal/game"
	"github.com/chrystiano/mega-sena-generator/internal/parse"
	"github.com/chrystiano/mega-sena-generator/internal/pricing"
	"github.com/chrystiano/mega-sena-generator/internal/store"
)

// Server bundles router, in-memory run store, history DB handle, and the
// unit price applied to every run.
type Server struct {
	r     *chi.Mux
	store store.Store
	db    *sql.DB
	unit  decimal.Decimal
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, db *sql.DB, unitPrice decimal.Decimal) *Server {
	s := &Server{r: chi.NewRouter(), store: st, db: db, unit: unitPrice}

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
		_, _ = w.Write([]byte(`{"service":"megasena-go","endpoints":["/health","POST /run/new","GET /run/{id}","GET /run/{id}/download","GET /runs/recent"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Run endpoints
	s.r.Post("/run/new", s.handleNewRun)
	s.r.Get("/run/{id}", s.handleGetRun)
	s.r.Get("/run/{id}/download", s.handleDownload)
	s.r.Get("/runs/recent", s.handleRecentRuns)

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
// Handlers serving other types (the download endpoint) overwrite it.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
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

// jsonError writes a JSON error body. detail is optional.
func jsonError(w http.ResponseWriter, status int, code, detail string) {
	w.WriteHeader(status)
	body := map[string]string{"error": code}
	if detail != "" {
		body["detail"] = detail
	}
	_ = json.NewEncoder(w).Encode(body)
}

// ------------------------------ RUNS ---------------------------------------

// newRunReq is the payload for POST /run/new.
type newRunReq struct {
	Games      string `json:"games"`      // pasted reference lines
	Multiplier int    `json:"multiplier"` // 1..5
}

// runRes is the JSON shape of a run.
type runRes struct {
	ID            string         `json:"id"`
	CreatedAt     time.Time      `json:"createdAt"`
	Multiplier    int            `json:"multiplier"`
	Counts        map[string]int `json:"counts"` // games per type tag
	Games         []game.Game    `json:"games"`
	Cost          string         `json:"cost"`          // decimal, e.g. "30.00"
	CostFormatted string         `json:"costFormatted"` // e.g. "R$ 30,00"
}

func newRunRes(run *game.Run) runRes {
	counts := map[string]int{}
	for i := range run.Games {
		counts[string(run.Games[i].Type)]++
	}
	return runRes{
		ID:            run.ID,
		CreatedAt:     run.CreatedAt,
		Multiplier:    run.Multiplier,
		Counts:        counts,
		Games:         run.Games,
		Cost:          run.Cost.StringFixed(2),
		CostFormatted: pricing.FormatBRL(run.Cost),
	}
}

// handleNewRun parses the pasted reference games, runs the generator, stores
// the run in memory, and records a best-effort history row keyed by the
// caller's anonymous cookie.
func (s *Server) handleNewRun(w http.ResponseWriter, r *http.Request) {
	var req newRunReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "bad_json", "")
		return
	}

	refs, err := parse.Reference(req.Games)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "parse_failed", err.Error())
		return
	}
	gen, err := game.NewGenerator(refs)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid_reference", err.Error())
		return
	}
	games, err := gen.Generate(req.Multiplier)
	if err != nil {
		if errors.Is(err, game.ErrExhausted) {
			jsonError(w, http.StatusUnprocessableEntity, "pool_exhausted", err.Error())
			return
		}
		jsonError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	run := &game.Run{
		ID:         game.NewID(),
		CreatedAt:  time.Now().UTC(),
		Multiplier: req.Multiplier,
		Games:      games,
		Cost:       pricing.TotalCost(len(games), s.unit),
	}
	if err := s.store.Save(r.Context(), run); err != nil {
		log.Error().Err(err).Msg("save run")
		jsonError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}

	// History row (best effort, non-fatal if it fails)
	anon := s.ensureAnonID(w, r)
	if _, err := s.db.Exec(`INSERT INTO runs (id, anonymous_id, multiplier, reference_count, games_total, cost, created_at)
	                        VALUES (?,?,?,?,?,?,?)`,
		run.ID, anon, run.Multiplier, len(refs), len(games),
		run.Cost.StringFixed(2), run.CreatedAt.Format(time.RFC3339)); err != nil {
		log.Warn().Err(err).Str("runId", run.ID).Msg("insert run history row")
	}

	_ = json.NewEncoder(w).Encode(newRunRes(run))
}

// handleGetRun returns a stored run as JSON.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		jsonError(w, http.StatusNotFound, "not_found", "")
		return
	}
	_ = json.NewEncoder(w).Encode(newRunRes(run))
}

// handleDownload returns the run as a plain-text file, one game per line.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		jsonError(w, http.StatusNotFound, "not_found", "")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="mega_sena_jogos.txt"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(run.File()))
}

// handleRecentRuns lists the caller's recent runs from the history DB.
func (s *Server) handleRecentRuns(w http.ResponseWriter, r *http.Request) {
	anon := s.ensureAnonID(w, r)
	rows, err := s.db.Query(`SELECT id, multiplier, reference_count, games_total, cost, created_at
	                         FROM runs WHERE anonymous_id=? ORDER BY created_at DESC LIMIT 50`, anon)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	defer rows.Close()

	type runRow struct {
		ID             string `json:"id"`
		Multiplier     int    `json:"multiplier"`
		ReferenceCount int    `json:"referenceCount"`
		GamesTotal     int    `json:"gamesTotal"`
		Cost           string `json:"cost"`
		CreatedAt      string `json:"createdAt"`
	}
	out := []runRow{}
	for rows.Next() {
		var rr runRow
		if err := rows.Scan(&rr.ID, &rr.Multiplier, &rr.ReferenceCount, &rr.GamesTotal, &rr.Cost, &rr.CreatedAt); err == nil {
			out = append(out, rr)
		}
	}
	_ = json.NewEncoder(w).Encode(out)
}

// -------------------------- anonymous cookie -------------------------------

const anonCookieName = "megasena_anon"

// ensureAnonID returns an existing anon cookie or sets a new one.
// Used to scope run history to a stable caller identity without accounts.
func (s *Server) ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := game.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("NODE_ENV") == "production",
		SameSite: func() http.SameSite {
			if os.Getenv("NODE_ENV") == "production" {
				return http.SameSiteNoneMode
			}
			return http.SameSiteLaxMode
		}(),
		Expires: time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}
