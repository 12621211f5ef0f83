// internal/game/session.go
//
// One live game session: the shared Gamestate plus per-round bookkeeping
// (curse tracker) and the session's random source.
// Responsibilities:
//   - Join: register a player at a randomized spawn.
//   - Update: the per-request mutation protocol a polling client drives.
//   - Round life-cycle: waiting -> active on all-ready, reset on end flag.
//
// Callers must serialize access externally (the store's lock); a Session
// has no locking of its own.

package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"
)

// ErrUnknownPlayer is returned when an update names a player id that never
// joined the game. No mutation happens in that case.
var ErrUnknownPlayer = errors.New("unknown player")

// Session wraps a Gamestate with per-round bookkeeping. The rand source is
// injected so tests can run deterministically.
type Session struct {
	ID     string
	Public bool
	Game   *Gamestate

	usedCurses   map[ItemKind]bool
	rng          *rand.Rand
	pregenRadius int
}

// NewSession creates a fresh session. pregenRadius > 0 pre-seeds every
// round's map with a pruned diamond backbone of that radius; 0 starts each
// round from the single exit room.
func NewSession(id string, public bool, pregenRadius int, rng *rand.Rand) *Session {
	s := &Session{
		ID:           id,
		Public:       public,
		Game:         NewGamestate(),
		usedCurses:   make(map[ItemKind]bool),
		rng:          rng,
		pregenRadius: pregenRadius,
	}
	if pregenRadius > 0 {
		s.Game.Map = s.pregeneratedMap()
	}
	return s
}

// Join registers a new player and returns its opaque id and spawn position.
func (s *Session) Join(name string) (string, Vec2) {
	id := uuid.NewString()
	pos := s.spawnPosition()
	s.Game.Players[id] = &Player{Name: name, Position: pos}
	s.Game.AddMessage(name + " has joined!")
	return id, pos
}

// UpdateInput carries one polling client's report.
type UpdateInput struct {
	PlayerID     string
	Position     Vec2
	NewRooms     []Coord
	ClearedRooms []Coord
	Ready        bool
	End          bool
}

// RoundResult describes a finished round, captured just before the reset.
type RoundResult struct {
	Round   int
	EndedBy string
	Keys    int
	Players int
}

// Update applies one client report and returns a snapshot of the resulting
// state. When the report carries the end flag the round is reset
// immediately and any new/cleared rooms in the same report are ignored;
// the returned RoundResult is non-nil in that case.
func (s *Session) Update(in UpdateInput) (*Gamestate, *RoundResult, error) {
	p, ok := s.Game.Players[in.PlayerID]
	if !ok {
		return nil, nil, ErrUnknownPlayer
	}

	p.Position = in.Position
	p.Ready = in.Ready

	// Waiting -> Active the moment everyone is ready. Never reverts.
	if !s.Game.Started && s.Game.AllReady() {
		s.Game.Started = true
		s.Game.AddMessage("Everyone is ready. The hunt begins!")
	}

	if in.End {
		result := &RoundResult{
			Round:   s.Game.Round,
			EndedBy: p.Name,
			Keys:    s.Game.Keys,
			Players: len(s.Game.Players),
		}
		s.nextRound(p.Name)
		return s.Game.Snapshot(), result, nil
	}

	for _, c := range in.NewRooms {
		if s.Game.Map.Reveal(c) {
			s.maybeAssignItem(s.Game.Map.Room(c))
		}
	}
	for _, c := range in.ClearedRooms {
		s.clearRoom(p.Name, c)
	}

	return s.Game.Snapshot(), nil, nil
}

// nextRound resets the world for the following round. Players stay in and
// keep their ready state; started stays true so play resumes without a
// second handshake.
func (s *Session) nextRound(endedBy string) {
	// Counters reset before the map is rebuilt: the pregenerated scatter
	// reads Keys and the curse tracker, and must see the new round's
	// values, not the dying round's.
	s.Game.Keys = 0
	s.Game.Round++
	s.Game.Messages = []string{}
	s.usedCurses = make(map[ItemKind]bool)
	if s.pregenRadius > 0 {
		s.Game.Map = s.pregeneratedMap()
	} else {
		s.Game.Map = NewMap()
	}
	s.Game.AddMessage(fmt.Sprintf("%s has reached the exit! Round %d begins.", endedBy, s.Game.Round))
	for _, p := range s.Game.Players {
		p.Position = s.spawnPosition()
	}
}

// spawnPosition picks a random revealed non-origin room and a point in its
// open interior. Falls back to the origin room while it is the only one.
func (s *Session) spawnPosition() Vec2 {
	candidates := make([]Coord, 0, s.Game.Map.Len())
	s.Game.Map.Each(func(r *Room) bool {
		if r.Position != (Coord{0, 0}) {
			candidates = append(candidates, r.Position)
		}
		return true
	})
	c := Coord{0, 0}
	if len(candidates) > 0 {
		// Map iteration order is random; sort so a seeded rng is enough
		// for reproducible spawns.
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].X() != candidates[j].X() {
				return candidates[i].X() < candidates[j].X()
			}
			return candidates[i].Y() < candidates[j].Y()
		})
		c = candidates[s.rng.Intn(len(candidates))]
	}
	return Vec2{
		float32(c.X()*RoomSize) + 2 + s.rng.Float32()*(RoomSize-4),
		float32(c.Y()*RoomSize) + 2 + s.rng.Float32()*(RoomSize-4),
	}
}
