// internal/game/gamestate.go
//
// Aggregate game state for one session: roster, map, key counter, message
// log, round counter, started flag. Pure data plus small helpers; the
// round life-cycle itself is driven from session.go.

package game

// Gamestate is everything a client needs to render the shared world. It is
// also the update response body, so field names follow the wire format.
type Gamestate struct {
	Players  map[string]*Player `json:"players"`
	Map      *Map               `json:"map"`
	Started  bool               `json:"started"`
	Keys     int                `json:"keys"`
	Messages []string           `json:"messages"`
	Round    int                `json:"round"`
}

// NewGamestate returns the waiting-room state for round 1.
func NewGamestate() *Gamestate {
	return &Gamestate{
		Players:  make(map[string]*Player),
		Map:      NewMap(),
		Messages: []string{},
		Round:    1,
	}
}

// AddMessage appends a line to the round's log.
func (g *Gamestate) AddMessage(text string) {
	g.Messages = append(g.Messages, text)
}

// AllReady reports whether every registered player has flagged ready.
// False while the roster is empty.
func (g *Gamestate) AllReady() bool {
	if len(g.Players) == 0 {
		return false
	}
	for _, p := range g.Players {
		if !p.Ready {
			return false
		}
	}
	return true
}

// Snapshot returns a deep copy safe to marshal after the store lock is
// released. Rooms, items, players and the message slice are all copied.
func (g *Gamestate) Snapshot() *Gamestate {
	snap := &Gamestate{
		Players:  make(map[string]*Player, len(g.Players)),
		Map:      &Map{Rooms: make(map[int]map[int]*Room, len(g.Map.Rooms))},
		Started:  g.Started,
		Keys:     g.Keys,
		Messages: append([]string{}, g.Messages...),
		Round:    g.Round,
	}
	for id, p := range g.Players {
		cp := *p
		snap.Players[id] = &cp
	}
	for x, row := range g.Map.Rooms {
		cpRow := make(map[int]*Room, len(row))
		for y, r := range row {
			cp := *r
			if r.Item != nil {
				item := *r.Item
				cp.Item = &item
			}
			cpRow[y] = &cp
		}
		snap.Map.Rooms[x] = cpRow
	}
	return snap
}
