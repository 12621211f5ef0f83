// internal/game/map.go
//
// Sparse dungeon map and the incremental growth algorithm.
// Responsibilities:
//   - Coordinate-indexed room storage (nested rows, preserving the
//     original {"x": {"y": room}} wire encoding).
//   - Reveal: idempotent room insertion plus door pruning.
//   - Degree queries against the live map (never cached).
//
// Growth rule: after inserting a room, any still-unrevealed neighbor cell
// that has become reachable from more than one revealed direction would
// close a cycle the moment it is revealed. To keep the explored graph
// tree-like, every existing neighbor of such a cell closes the one door
// facing it. The newly inserted room counts toward those degrees.

package game

// Map is a sparse 2-D index of rooms keyed by grid coordinate. It always
// contains at least the seed (exit) room at the origin.
type Map struct {
	Rooms map[int]map[int]*Room `json:"rooms"`
}

// NewMap returns a map holding only the exit room at (0,0).
func NewMap() *Map {
	m := &Map{Rooms: make(map[int]map[int]*Room)}
	m.put(NewExitRoom(Coord{0, 0}))
	return m
}

// Room returns the room at c, or nil.
func (m *Map) Room(c Coord) *Room {
	if row, ok := m.Rooms[c.X()]; ok {
		return row[c.Y()]
	}
	return nil
}

func (m *Map) put(r *Room) {
	row, ok := m.Rooms[r.Position.X()]
	if !ok {
		row = make(map[int]*Room)
		m.Rooms[r.Position.X()] = row
	}
	row[r.Position.Y()] = r
}

// Len returns the number of rooms.
func (m *Map) Len() int {
	n := 0
	for _, row := range m.Rooms {
		n += len(row)
	}
	return n
}

// Each calls fn for every room until fn returns false. Iteration order is
// unspecified.
func (m *Map) Each(fn func(*Room) bool) {
	for _, row := range m.Rooms {
		for _, r := range row {
			if !fn(r) {
				return
			}
		}
	}
}

// Degree counts how many of c's four neighbor coordinates hold a room.
func (m *Map) Degree(c Coord) int {
	d := 0
	for _, n := range c.neighbors() {
		if m.Room(n.Coord) != nil {
			d++
		}
	}
	return d
}

// Reveal inserts a basic room at c with all doors open and applies door
// pruning. Revealing a known coordinate is a no-op returning false.
func (m *Map) Reveal(c Coord) bool {
	if m.Room(c) != nil {
		return false
	}
	m.put(NewRoom(c))
	m.pruneDoors(c)
	return true
}

// pruneDoors closes doors around any unrevealed frontier cell adjacent to
// the freshly inserted room at c that now has more than one revealed
// neighbor. Closing happens on the revealed side: each existing neighbor of
// the frontier cell shuts the single door facing it.
func (m *Map) pruneDoors(c Coord) {
	for _, n := range c.neighbors() {
		frontier := n.Coord
		if m.Room(frontier) != nil || m.Degree(frontier) <= 1 {
			continue
		}
		for _, fn := range frontier.neighbors() {
			if r := m.Room(fn.Coord); r != nil {
				r.Doors.Close(fn.Facing)
			}
		}
	}
}
