package model

import (
	"testing"
	"time"
)

func TestNewGame(t *testing.T) {
	game := NewGame("ABCD")

	if game.Code != "ABCD" {
		t.Errorf("expected code ABCD, got %q", game.Code)
	}
	if len(game.Players) != 0 {
		t.Errorf("expected no players, got %d", len(game.Players))
	}
	if game.DurationMS != 1200000 {
		t.Errorf("expected 1200000ms duration, got %d", game.DurationMS)
	}
	if game.StartTime != nil || game.EndTime != nil {
		t.Error("expected null start and end time")
	}
	if game.CompletedTasks == nil || len(game.CompletedTasks) != 0 {
		t.Errorf("expected empty completedTasks map, got %v", game.CompletedTasks)
	}
	if len(game.Tasks.Daily) == 0 || len(game.Tasks.Weekly) == 0 || len(game.Tasks.Silly) == 0 {
		t.Error("expected a generated task catalog")
	}
}

func TestGameStatus(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	game := NewGame("ABCD")
	if got := game.Status(now); got != GameWaiting {
		t.Errorf("expected waiting before start, got %s", got)
	}

	started := now.Add(-5 * time.Minute)
	game.StartTime = &started
	if got := game.Status(now); got != GamePlaying {
		t.Errorf("expected playing mid-round, got %s", got)
	}

	expired := now.Add(-21 * time.Minute)
	game.StartTime = &expired
	if got := game.Status(now); got != GameFinished {
		t.Errorf("expected finished after duration elapsed, got %s", got)
	}

	game.StartTime = &started
	game.EndTime = &now
	if got := game.Status(now); got != GameFinished {
		t.Errorf("expected finished once endTime is set, got %s", got)
	}
}

func TestGameRemaining(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	game := NewGame("ABCD")
	if got := game.Remaining(now); got != GameDuration {
		t.Errorf("expected full duration before start, got %s", got)
	}

	started := now.Add(-5 * time.Minute)
	game.StartTime = &started
	if got := game.Remaining(now); got != 15*time.Minute {
		t.Errorf("expected 15m remaining, got %s", got)
	}

	expired := now.Add(-30 * time.Minute)
	game.StartTime = &expired
	if got := game.Remaining(now); got != 0 {
		t.Errorf("expected remaining floored at zero, got %s", got)
	}
}

func TestFindPlayer(t *testing.T) {
	game := NewGame("ABCD")
	game.Players = append(game.Players,
		&Player{ID: "p1", Name: "Alice"},
		&Player{ID: "p2", Name: "Bob"},
	)

	if p := game.FindPlayer("p2"); p == nil || p.Name != "Bob" {
		t.Errorf("expected Bob for p2, got %+v", p)
	}
	if p := game.FindPlayer("p3"); p != nil {
		t.Errorf("expected nil for unknown id, got %+v", p)
	}
	if p := game.FindPlayer(""); p != nil {
		t.Errorf("expected nil for empty id, got %+v", p)
	}

	if p := game.FindPlayerByName("Alice"); p == nil || p.ID != "p1" {
		t.Errorf("expected p1 for Alice, got %+v", p)
	}
	if p := game.FindPlayerByName("alice"); p != nil {
		t.Errorf("name match is case-sensitive, got %+v", p)
	}
}
