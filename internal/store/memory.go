// internal/store/memory.go
//
// In-memory implementation of the session Store interface. The entire
// process state lives here; a restart loses every game by design.
//
// Characteristics:
//   - Stores *game.Session objects keyed by game id in a map.
//   - One store-wide mutex: With runs its callback under the write lock,
//     so every mutating operation (create, join, update) is atomic with
//     respect to all games. Coarse but race-free at the expected scale.
//   - Sessions are never evicted.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/lycan-game/lycan-server/internal/game"
)

// ErrNotFound is returned for game ids that were never created.
var ErrNotFound = errors.New("game not found")

// Store is the registry of live game sessions.
// Implementations may shard their locking per game id; callers only rely
// on per-game atomicity of With.
type Store interface {
	// Create registers a new session under its id.
	Create(ctx context.Context, s *game.Session) error

	// With runs fn with exclusive access to the session for id.
	// Returns ErrNotFound (and never calls fn) if the id is unknown;
	// otherwise returns fn's error.
	With(ctx context.Context, id string, fn func(*game.Session) error) error

	// PublicIDs lists the ids of sessions created with the public flag,
	// sorted for stable output.
	PublicIDs(ctx context.Context) []string

	// Len reports the number of live sessions.
	Len(ctx context.Context) int
}

// memory is the map-based Store implementation.
type memory struct {
	mu    sync.RWMutex             // guards games map and all session state
	games map[string]*game.Session // keyed by Session.ID
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Session)}
}

func (m *memory) Create(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[s.ID] = s
	return nil
}

func (m *memory) With(ctx context.Context, id string, fn func(*game.Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(s)
}

func (m *memory) PublicIDs(ctx context.Context) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := []string{}
	for id, s := range m.games {
		if s.Public {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func (m *memory) Len(ctx context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
