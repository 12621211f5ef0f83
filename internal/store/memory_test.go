package store

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/lycan-game/lycan-server/internal/game"
)

func newSession(id string, public bool) *game.Session {
	return game.NewSession(id, public, 0, rand.New(rand.NewSource(1)))
}

func TestCreateAndWith(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	if err := st.Create(ctx, newSession("abc", false)); err != nil {
		t.Fatal(err)
	}
	if st.Len(ctx) != 1 {
		t.Errorf("len = %d, want 1", st.Len(ctx))
	}

	var gotID string
	err := st.With(ctx, "abc", func(s *game.Session) error {
		gotID = s.ID
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if gotID != "abc" {
		t.Errorf("session id = %q", gotID)
	}
}

func TestWithUnknownGame(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	called := false
	err := st.With(ctx, "nope", func(s *game.Session) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if called {
		t.Error("callback must not run for unknown ids")
	}
}

func TestWithPropagatesCallbackError(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	_ = st.Create(ctx, newSession("abc", false))

	sentinel := errors.New("boom")
	if err := st.With(ctx, "abc", func(s *game.Session) error { return sentinel }); !errors.Is(err, sentinel) {
		t.Errorf("err = %v, want sentinel", err)
	}
}

func TestPublicIDs(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	_ = st.Create(ctx, newSession("bbb", true))
	_ = st.Create(ctx, newSession("aaa", true))
	_ = st.Create(ctx, newSession("ccc", false))

	ids := st.PublicIDs(ctx)
	if len(ids) != 2 || ids[0] != "aaa" || ids[1] != "bbb" {
		t.Errorf("public ids = %v", ids)
	}
}
