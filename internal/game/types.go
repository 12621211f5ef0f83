// internal/game/types.go
//
// Shared type definitions for the dungeon engine.
// Defines:
//   - Direction: the four cardinal door directions.
//   - Coord: a room's position on the (infinite, sparse) dungeon grid.
//   - ItemKind / Item: collectibles placed in rooms (keys and curses).
//   - Player: one connected player inside a game.

package game

// RoomSize is the side length of a room's local tile grid.
const RoomSize = 16

// KeyTarget is the number of keys that unlocks the exit. The key counter
// saturates here; it never exceeds KeyTarget within a round.
const KeyTarget = 8

// Direction is one of the four cardinal door directions of a room.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the wire name of the direction, matching the door keys
// used in room JSON ("Up"/"Down"/"Left"/"Right").
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Right"
	}
}

// Coord addresses a room on the dungeon grid. Serialized as [x, y].
type Coord [2]int

// X and Y are convenience accessors for the two grid axes.
func (c Coord) X() int { return c[0] }
func (c Coord) Y() int { return c[1] }

// neighbor pairs an adjacent coordinate with the direction that
// neighbor's facing door points back toward the center cell: the room
// above reaches it through its Down door, the room to the left through
// its Right door, and so on.
type neighbor struct {
	Coord  Coord
	Facing Direction
}

// neighbors returns the four 4-connected neighbor cells of c.
func (c Coord) neighbors() [4]neighbor {
	return [4]neighbor{
		{Coord{c[0], c[1] + 1}, Down},
		{Coord{c[0], c[1] - 1}, Up},
		{Coord{c[0] - 1, c[1]}, Right},
		{Coord{c[0] + 1, c[1]}, Left},
	}
}

// ItemKind identifies a collectible. Key is the win-condition currency;
// the other three are curses limited to one instance per round.
type ItemKind string

const (
	KindKey   ItemKind = "key"
	KindClear ItemKind = "clear"
	KindSpin  ItemKind = "spin"
	KindBad   ItemKind = "bad"
)

// IsCurse reports whether the kind is subject to per-round uniqueness.
func (k ItemKind) IsCurse() bool { return k != KindKey }

// Item is a collectible placed on a floor tile inside a room.
type Item struct {
	Kind ItemKind `json:"kind"`
	Tile Coord    `json:"tile"` // local tile coordinate within the room
}

// Vec2 is a continuous world position. Serialized as [x, y].
type Vec2 [2]float32

// Player is one member of a game's roster. Players are never removed;
// position and readiness are overwritten on every update they send.
type Player struct {
	Name     string `json:"name"`
	Position Vec2   `json:"position"`
	Ready    bool   `json:"ready"`
}
