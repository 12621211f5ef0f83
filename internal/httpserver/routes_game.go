// internal/httpserver/routes_game.go
//
// HTTP routes for the game protocol. Four operations drive a session:
//   - POST /game/new     → create a game, returns its id
//   - POST /game/join    → add a player, returns id + spawn position
//   - POST /game/update  → per-poll mutation, returns the full snapshot
//   - GET  /game/public  → joinable public game ids
//   - GET  /game/history → recently finished rounds (if DB configured)
//
// Clients poll /game/update on a fixed interval; the full state in every
// response is the only synchronization mechanism. Malformed JSON is a 400
// before any lookup; unknown game or player ids are a uniform 404 with no
// partial mutation.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	mathrand "math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/lycan-game/lycan-server/internal/game"
	"github.com/lycan-game/lycan-server/internal/store"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/join", s.handleJoinGame)
		r.Post("/update", s.handleUpdate)
		r.Get("/public", s.handlePublicGames)
		r.Get("/history", s.handleHistory)
	})
}

// ------------------------------ /game/new ----------------------------------

type newGameReq struct {
	Public bool `json:"public"`
}
type newGameRes struct {
	GameID string `json:"game_id"`
}

// handleNewGame creates a new in-memory session and records a best-effort
// history row. Always succeeds.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	sess := game.NewSession(genGameID(), req.Public, s.opts.PregenRadius, s.newRand())
	if err := s.st.Create(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("create game")
		http.Error(w, `{"error":"create_failed"}`, http.StatusInternalServerError)
		return
	}
	if err := s.hist.RecordGame(r.Context(), sess.ID, sess.Public); err != nil {
		log.Warn().Err(err).Str("game_id", sess.ID).Msg("insert game row")
	}
	log.Info().Str("game_id", sess.ID).Bool("public", sess.Public).Msg("game created")
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: sess.ID})
}

// ------------------------------ /game/join ---------------------------------

type joinGameReq struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"player_name"`
}
type joinGameRes struct {
	PlayerID string    `json:"player_id"`
	Position game.Vec2 `json:"position"`
}

// handleJoinGame registers a player in an existing game.
func (s *Server) handleJoinGame(w http.ResponseWriter, r *http.Request) {
	var req joinGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	var res joinGameRes
	err := s.st.With(r.Context(), req.GameID, func(sess *game.Session) error {
		res.PlayerID, res.Position = sess.Join(req.PlayerName)
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("game_id", req.GameID).Msg("join game")
		http.Error(w, `{"error":"join_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("game_id", req.GameID).Str("player", req.PlayerName).Msg("player joined")
	_ = json.NewEncoder(w).Encode(res)
}

// ----------------------------- /game/update --------------------------------

type updateReq struct {
	GameID       string       `json:"game_id"`
	PlayerID     string       `json:"player_id"`
	Position     game.Vec2    `json:"position"`
	NewRooms     []game.Coord `json:"new_rooms"`
	ClearedRooms []game.Coord `json:"cleared_rooms"`
	Ready        bool         `json:"ready"`
	End          bool         `json:"end"`
}

// handleUpdate applies one client report and returns the full snapshot.
// The response body is the game.Gamestate wire encoding.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	var snap *game.Gamestate
	var ended *game.RoundResult
	err := s.st.With(r.Context(), req.GameID, func(sess *game.Session) error {
		var err error
		snap, ended, err = sess.Update(game.UpdateInput{
			PlayerID:     req.PlayerID,
			Position:     req.Position,
			NewRooms:     req.NewRooms,
			ClearedRooms: req.ClearedRooms,
			Ready:        req.Ready,
			End:          req.End,
		})
		return err
	})
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, game.ErrUnknownPlayer) {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	// Persist the finished round (best effort, non-fatal if it fails).
	if ended != nil {
		if err := s.hist.RecordRound(r.Context(), req.GameID, ended.Round, ended.EndedBy, ended.Keys, ended.Players); err != nil {
			log.Warn().Err(err).Str("game_id", req.GameID).Msg("insert round row")
		}
		log.Info().Str("game_id", req.GameID).Int("round", ended.Round).Str("ended_by", ended.EndedBy).Msg("round finished")
	}

	_ = json.NewEncoder(w).Encode(snap)
}

// ----------------------------- /game/public --------------------------------

type publicGamesRes struct {
	Games []string `json:"games"`
}

// handlePublicGames lists joinable public game ids.
func (s *Server) handlePublicGames(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(publicGamesRes{Games: s.st.PublicIDs(r.Context())})
}

// ----------------------------- /game/history -------------------------------

// handleHistory returns recently finished rounds across all games.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	rows, err := s.hist.Recent(r.Context(), 20)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rows)
}

// ------------------------------- helpers -----------------------------------

// genGameID creates a short URL-safe crypto-random game identifier.
func genGameID() string {
	var b [6]byte
	_, _ = rand.Read(b[:])
	return base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
}

// newRand builds a session's random source: deterministic under
// Options.Seed, time-seeded otherwise.
func (s *Server) newRand() *mathrand.Rand {
	seed := s.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return mathrand.New(mathrand.NewSource(seed))
}
