// internal/game/room.go
//
// Room model and tile classification.
// Responsibilities:
//   - Door open/closed state per cardinal direction.
//   - The fixed "basic" room layout: a pure mapping from local tile
//     coordinate to tile type, parsed once from a rune grid.
//   - Wall/door passability predicates used by clients for collision.
//
// Notes:
//   - Tile classification is independent of door state; a Door tile is
//     passable only while the room's flag for that direction is open.
//   - IsWall and IsDoor are mutually exclusive and together cover every
//     door tile.

package game

import "fmt"

// TileKind classifies a single local tile of a room layout.
type TileKind int

const (
	TileNone TileKind = iota
	TileFloor
	TileWall
	TileDoor
)

// WallKind gives a wall tile its sprite orientation. Purely cosmetic on the
// server side; carried so clients can render without their own layout table.
type WallKind int

const (
	WallNorth WallKind = iota
	WallSouth
	WallEast
	WallWest
	WallInnerNE
	WallInnerNW
	WallInnerSE
	WallInnerSW
	WallOuterNE
	WallOuterNW
	WallOuterSE
	WallOuterSW
)

// Tile is the classification of one local coordinate.
type Tile struct {
	Kind TileKind
	Wall WallKind  // valid when Kind == TileWall
	Door Direction // valid when Kind == TileDoor
}

// Doors holds the open/closed flag per cardinal direction. JSON keys match
// the original wire format.
type Doors struct {
	Up    bool `json:"Up"`
	Down  bool `json:"Down"`
	Left  bool `json:"Left"`
	Right bool `json:"Right"`
}

func allOpen() Doors { return Doors{Up: true, Down: true, Left: true, Right: true} }

// Open reports whether the door in the given direction is open.
func (d Doors) Open(dir Direction) bool {
	switch dir {
	case Up:
		return d.Up
	case Down:
		return d.Down
	case Left:
		return d.Left
	default:
		return d.Right
	}
}

// Close shuts the door in the given direction.
func (d *Doors) Close(dir Direction) {
	switch dir {
	case Up:
		d.Up = false
	case Down:
		d.Down = false
	case Left:
		d.Left = false
	default:
		d.Right = false
	}
}

// RoomType selects a room layout. Only one layout exists today.
type RoomType string

const RoomBasic RoomType = "Basic"

// Room is one 16x16 cell of the dungeon. Position and layout are immutable
// after creation; doors and item may be mutated (pruning, pickup).
type Room struct {
	Doors    Doors    `json:"doors"`
	Position Coord    `json:"position"`
	Type     RoomType `json:"room_type"`
	Item     *Item    `json:"item,omitempty"`
	Exit     bool     `json:"exit,omitempty"`
}

// NewRoom creates a basic room at c with all four doors open.
func NewRoom(c Coord) *Room {
	return &Room{Doors: allOpen(), Position: c, Type: RoomBasic}
}

// NewExitRoom creates the round's seed room at c. Layout-wise it is a basic
// room; the flag tells clients to draw the exit hatch.
func NewExitRoom(c Coord) *Room {
	r := NewRoom(c)
	r.Exit = true
	return r
}

// Tile classifies the local coordinate (0..15, 0..15). Pure: door state does
// not affect classification.
func (r *Room) Tile(x, y int) Tile {
	if x < 0 || x >= RoomSize || y < 0 || y >= RoomSize {
		return Tile{Kind: TileNone}
	}
	return basicTiles[RoomSize-1-y][x]
}

// IsWall reports whether the tile blocks movement: a wall tile, or a door
// tile whose direction is currently closed.
func (r *Room) IsWall(x, y int) bool {
	t := r.Tile(x, y)
	switch t.Kind {
	case TileWall:
		return true
	case TileDoor:
		return !r.Doors.Open(t.Door)
	default:
		return false
	}
}

// IsDoor reports whether the tile is a currently-open door.
func (r *Room) IsDoor(x, y int) bool {
	t := r.Tile(x, y)
	return t.Kind == TileDoor && r.Doors.Open(t.Door)
}

// The basic layout as a rune grid, top row first (y = 15). The room is a
// plus-shaped outline with a 4-tile door gap on each side.
//
// Legend: ' ' none, '.' floor, NSEW wall orientations, ABCD outer corners
// (NW NE SW SE), abcd inner corners (NW NE SW SE), ^v<> doors (Up Down
// Left Right).
var basicLayout = [RoomSize]string{
	`     W^^^^E     `,
	` aNNNA....BNNNb `,
	` W............E `,
	` W............E `,
	` W............E `,
	`NA............BN`,
	`<..............>`,
	`<..............>`,
	`<..............>`,
	`<..............>`,
	`SC............DS`,
	` W............E `,
	` W............E `,
	` W............E `,
	` cSSSC....DSSSd `,
	`     WvvvvE     `,
}

var basicTiles [RoomSize][RoomSize]Tile

func init() {
	for row, line := range basicLayout {
		if len(line) != RoomSize {
			panic(fmt.Sprintf("basic layout row %d: want %d runes, got %d", row, RoomSize, len(line)))
		}
		for col, r := range line {
			basicTiles[row][col] = parseTile(r)
		}
	}
}

func parseTile(r rune) Tile {
	switch r {
	case ' ':
		return Tile{Kind: TileNone}
	case '.':
		return Tile{Kind: TileFloor}
	case 'N':
		return Tile{Kind: TileWall, Wall: WallNorth}
	case 'S':
		return Tile{Kind: TileWall, Wall: WallSouth}
	case 'E':
		return Tile{Kind: TileWall, Wall: WallEast}
	case 'W':
		return Tile{Kind: TileWall, Wall: WallWest}
	case 'A':
		return Tile{Kind: TileWall, Wall: WallOuterNW}
	case 'B':
		return Tile{Kind: TileWall, Wall: WallOuterNE}
	case 'C':
		return Tile{Kind: TileWall, Wall: WallOuterSW}
	case 'D':
		return Tile{Kind: TileWall, Wall: WallOuterSE}
	case 'a':
		return Tile{Kind: TileWall, Wall: WallInnerNW}
	case 'b':
		return Tile{Kind: TileWall, Wall: WallInnerNE}
	case 'c':
		return Tile{Kind: TileWall, Wall: WallInnerSW}
	case 'd':
		return Tile{Kind: TileWall, Wall: WallInnerSE}
	case '^':
		return Tile{Kind: TileDoor, Door: Up}
	case 'v':
		return Tile{Kind: TileDoor, Door: Down}
	case '<':
		return Tile{Kind: TileDoor, Door: Left}
	case '>':
		return Tile{Kind: TileDoor, Door: Right}
	default:
		panic(fmt.Sprintf("basic layout: unknown rune %q", r))
	}
}
