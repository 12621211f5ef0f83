// internal/game/pregen.go
//
// Optional map pregeneration: instead of growing from a single seed room,
// a round can start from a static backbone covering a diamond-shaped
// region. Leaf-heavy fringes are trimmed before play: any candidate cell
// with exactly one kept neighbor is discarded, and the scan restarts until
// the set is stable. Items are then scattered among the survivors under
// the usual curse-uniqueness rule.

package game

import "sort"

// pregeneratedMap builds the round's starting map from a pruned diamond of
// radius s.pregenRadius around the origin.
func (s *Session) pregeneratedMap() *Map {
	kept := make(map[Coord]bool)
	for x := -s.pregenRadius; x <= s.pregenRadius; x++ {
		for y := -s.pregenRadius; y <= s.pregenRadius; y++ {
			if abs(x)+abs(y) <= s.pregenRadius {
				kept[Coord{x, y}] = true
			}
		}
	}

	cells := sortedCoords(kept)
	for {
		discarded := false
		for _, c := range cells {
			if !kept[c] || c == (Coord{0, 0}) {
				// The origin is the round's exit room; it always
				// survives.
				continue
			}
			if keptDegree(kept, c) == 1 {
				delete(kept, c)
				discarded = true
				break
			}
		}
		if !discarded {
			break
		}
	}

	m := &Map{Rooms: make(map[int]map[int]*Room)}
	survivors := sortedCoords(kept)
	for _, c := range survivors {
		if c == (Coord{0, 0}) {
			m.put(NewExitRoom(c))
		} else {
			m.put(NewRoom(c))
		}
	}

	// Scatter items among the surviving rooms, sparing the exit. Sorted
	// order keeps seeded runs reproducible.
	for _, c := range survivors {
		if r := m.Room(c); !r.Exit {
			s.maybeAssignItem(r)
		}
	}
	return m
}

func keptDegree(kept map[Coord]bool, c Coord) int {
	d := 0
	for _, n := range c.neighbors() {
		if kept[n.Coord] {
			d++
		}
	}
	return d
}

func sortedCoords(set map[Coord]bool) []Coord {
	out := make([]Coord, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X() != out[j].X() {
			return out[i].X() < out[j].X()
		}
		return out[i].Y() < out[j].Y()
	})
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
