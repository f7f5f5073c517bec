package store

import (
	"context"
	"errors"
	"testing"

	"cleaningparty/internal/model"
)

func TestMemoryStoreGetMissing(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.Get(context.Background(), "ABCD")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	game := model.NewGame("ABCD")
	game.Players = append(game.Players, &model.Player{ID: "p1", Name: "Alice"})
	if err := st.Put(ctx, "ABCD", game); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := st.Get(ctx, "ABCD")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Players) != 1 || got.Players[0].Name != "Alice" {
		t.Fatalf("unexpected players: %+v", got.Players)
	}

	// Records are serialized; mutating a returned copy must not leak back.
	got.Players[0].Score = 99
	again, err := st.Get(ctx, "ABCD")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if again.Players[0].Score != 0 {
		t.Fatalf("store shares state with callers, score = %d", again.Players[0].Score)
	}
}

func TestMemoryStoreUpdateCreates(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	updated, err := st.Update(ctx, "ABCD", func(g *model.Game) (*model.Game, error) {
		if g != nil {
			t.Fatal("expected nil game for absent record")
		}
		return model.NewGame("ABCD"), nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Code != "ABCD" {
		t.Fatalf("expected created game, got %+v", updated)
	}

	if _, err := st.Get(ctx, "ABCD"); err != nil {
		t.Fatalf("expected record after update, got %v", err)
	}
}

func TestMemoryStoreUpdateAbortsOnError(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	game := model.NewGame("ABCD")
	if err := st.Put(ctx, "ABCD", game); err != nil {
		t.Fatalf("put: %v", err)
	}

	boom := errors.New("boom")
	_, err := st.Update(ctx, "ABCD", func(g *model.Game) (*model.Game, error) {
		g.Players = append(g.Players, &model.Player{ID: "p1", Name: "Alice"})
		return g, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error passed through, got %v", err)
	}

	got, err := st.Get(ctx, "ABCD")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Players) != 0 {
		t.Fatalf("aborted update must not persist, players = %+v", got.Players)
	}
}
