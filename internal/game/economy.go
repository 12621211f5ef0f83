// internal/game/economy.go
//
// Item and curse economy.
// Responsibilities:
//   - Assign collectibles to newly revealed rooms with bounded probability.
//   - Enforce at most one live instance of each curse kind per round; a
//     repeated curse draw silently yields a Key instead.
//   - Room clearing: key pickups (saturating at KeyTarget) and curse hits,
//     both logged to the message feed.

package game

var itemKinds = [...]ItemKind{KindClear, KindSpin, KindBad, KindKey}

// itemChance is the denominator of the per-room item probability (1 in 2).
const itemChance = 2

// maybeAssignItem rolls the item chance for a freshly revealed room. No
// items spawn once the round's key target is reached.
func (s *Session) maybeAssignItem(r *Room) {
	if s.Game.Keys >= KeyTarget {
		return
	}
	if s.rng.Intn(itemChance) != 0 {
		return
	}
	s.assignItem(r)
}

// assignItem places a uniformly drawn item in the room's open interior.
func (s *Session) assignItem(r *Room) {
	kind := s.curse(itemKinds[s.rng.Intn(len(itemKinds))])
	r.Item = &Item{Kind: kind, Tile: s.interiorTile()}
}

// curse applies the per-round uniqueness rule. Keys pass through; a curse
// kind already used this round degrades to a Key.
func (s *Session) curse(kind ItemKind) ItemKind {
	if !kind.IsCurse() {
		return kind
	}
	if s.usedCurses[kind] {
		return KindKey
	}
	s.usedCurses[kind] = true
	return kind
}

// interiorTile picks a random local tile inside the guaranteed-floor box
// of the basic layout, clear of the outer wall ring and door gaps.
func (s *Session) interiorTile() Coord {
	return Coord{2 + s.rng.Intn(RoomSize-4), 2 + s.rng.Intn(RoomSize-4)}
}

// clearRoom consumes the item in the room at c, if any. Keys bump the
// shared counter (saturating at KeyTarget); curses only log. Unknown or
// empty rooms are a silent no-op, as repeated clears from lagging clients
// are expected.
func (s *Session) clearRoom(playerName string, c Coord) {
	r := s.Game.Map.Room(c)
	if r == nil || r.Item == nil {
		return
	}
	if r.Item.Kind == KindKey {
		if s.Game.Keys < KeyTarget {
			s.Game.Keys++
		}
		s.Game.AddMessage(playerName + " has picked up a key!")
	} else {
		s.Game.AddMessage(playerName + " has been cursed!")
	}
	r.Item = nil
}
