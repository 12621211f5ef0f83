package game

import (
	"math/rand"
	"testing"
)

func testSession(seed int64) *Session {
	return NewSession("test", false, 0, rand.New(rand.NewSource(seed)))
}

func TestCurseUniqueness(t *testing.T) {
	s := testSession(1)

	for _, kind := range []ItemKind{KindClear, KindSpin, KindBad} {
		if got := s.curse(kind); got != kind {
			t.Errorf("first %s draw = %s, want %s", kind, got, kind)
		}
		// Every further draw of the same kind degrades to a key.
		for i := 0; i < 4; i++ {
			if got := s.curse(kind); got != KindKey {
				t.Errorf("repeat %s draw = %s, want key", kind, got)
			}
		}
	}

	// Keys are never uniqueness-limited.
	for i := 0; i < 4; i++ {
		if got := s.curse(KindKey); got != KindKey {
			t.Errorf("key draw = %s", got)
		}
	}
}

func TestAssignItemAtMostOneCursePerKind(t *testing.T) {
	s := testSession(7)

	counts := map[ItemKind]int{}
	for i := 0; i < 200; i++ {
		r := NewRoom(Coord{i, 0})
		s.assignItem(r)
		counts[r.Item.Kind]++
	}
	for _, kind := range []ItemKind{KindClear, KindSpin, KindBad} {
		if counts[kind] > 1 {
			t.Errorf("%s assigned %d times in one round", kind, counts[kind])
		}
	}
	if counts[KindKey] < 197 {
		t.Errorf("expected nearly all assignments to degrade to keys, got %d", counts[KindKey])
	}
}

func TestItemPlacementInsideInterior(t *testing.T) {
	s := testSession(3)
	for i := 0; i < 100; i++ {
		r := NewRoom(Coord{0, 0})
		s.assignItem(r)
		tile := r.Item.Tile
		if tile.X() < 2 || tile.X() > 13 || tile.Y() < 2 || tile.Y() > 13 {
			t.Fatalf("item tile %v outside open interior", tile)
		}
		if r.Tile(tile.X(), tile.Y()).Kind != TileFloor {
			t.Fatalf("item tile %v is not floor", tile)
		}
	}
}

func TestClearRoomKeyPickup(t *testing.T) {
	s := testSession(1)
	c := Coord{1, 0}
	s.Game.Map.Reveal(c)
	r := s.Game.Map.Room(c)
	r.Item = &Item{Kind: KindKey, Tile: Coord{5, 5}}

	s.clearRoom("Alice", c)
	if s.Game.Keys != 1 {
		t.Errorf("keys = %d, want 1", s.Game.Keys)
	}
	if r.Item != nil {
		t.Error("item should be removed on pickup")
	}
	if len(s.Game.Messages) == 0 || s.Game.Messages[len(s.Game.Messages)-1] != "Alice has picked up a key!" {
		t.Errorf("messages = %v", s.Game.Messages)
	}

	// Clearing again is a silent no-op.
	s.clearRoom("Alice", c)
	if s.Game.Keys != 1 {
		t.Errorf("keys after re-clear = %d, want 1", s.Game.Keys)
	}
	// Unknown room too.
	s.clearRoom("Alice", Coord{9, 9})
}

func TestClearRoomCurse(t *testing.T) {
	s := testSession(1)
	c := Coord{1, 0}
	s.Game.Map.Reveal(c)
	r := s.Game.Map.Room(c)
	r.Item = &Item{Kind: KindSpin, Tile: Coord{5, 5}}

	s.clearRoom("Bob", c)
	if s.Game.Keys != 0 {
		t.Errorf("keys = %d, want 0 after a curse", s.Game.Keys)
	}
	if r.Item != nil {
		t.Error("curse should be removed when triggered")
	}
	if s.Game.Messages[len(s.Game.Messages)-1] != "Bob has been cursed!" {
		t.Errorf("messages = %v", s.Game.Messages)
	}
}

func TestKeyCountSaturates(t *testing.T) {
	s := testSession(1)
	s.Game.Keys = KeyTarget - 1

	for i := 0; i < 3; i++ {
		c := Coord{i + 1, 0}
		s.Game.Map.Reveal(c)
		s.Game.Map.Room(c).Item = &Item{Kind: KindKey, Tile: Coord{5, 5}}
		s.clearRoom("Alice", c)
		if s.Game.Map.Room(c).Item != nil {
			t.Error("pickup must still consume the item at the cap")
		}
	}
	if s.Game.Keys != KeyTarget {
		t.Errorf("keys = %d, want saturation at %d", s.Game.Keys, KeyTarget)
	}
}

func TestNoItemsOnceKeyTargetReached(t *testing.T) {
	s := testSession(1)
	s.Game.Keys = KeyTarget
	for i := 0; i < 50; i++ {
		r := NewRoom(Coord{i, 1})
		s.maybeAssignItem(r)
		if r.Item != nil {
			t.Fatal("no items may spawn once the key target is reached")
		}
	}
}
