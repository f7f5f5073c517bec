package model

import "time"

// GameDuration is the fixed round length.
const GameDuration = 20 * time.Minute

type GameStatus string

const (
	GameWaiting  GameStatus = "waiting"
	GamePlaying  GameStatus = "playing"
	GameFinished GameStatus = "finished"
)

// Player is a participant in a game. Partner holds the id of the paired
// player, empty when unpaired. Score and TasksCompleted only ever grow.
type Player struct {
	ID             string `json:"id" bson:"id"`
	Name           string `json:"name" bson:"name"`
	Score          int    `json:"score" bson:"score"`
	Partner        string `json:"partner,omitempty" bson:"partner,omitempty"`
	TasksCompleted int    `json:"tasksCompleted" bson:"tasksCompleted"`
}

// CompletionRecord is the first-writer-wins record of a task completion.
// Records are created once and never mutated or removed.
type CompletionRecord struct {
	CompletedBy string    `json:"completedBy" bson:"completedBy"`
	Partner     string    `json:"partner,omitempty" bson:"partner,omitempty"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}

// Game is one room's full state, keyed by its player-supplied code. It is
// always read and written whole; no operation touches individual fields in
// the store.
type Game struct {
	Code           string                      `json:"code" bson:"code"`
	Players        []*Player                   `json:"players" bson:"players"`
	Tasks          TaskCatalog                 `json:"tasks" bson:"tasks"`
	StartTime      *time.Time                  `json:"startTime" bson:"startTime"`
	EndTime        *time.Time                  `json:"endTime" bson:"endTime"`
	DurationMS     int64                       `json:"duration" bson:"duration"`
	CompletedTasks map[string]CompletionRecord `json:"completedTasks" bson:"completedTasks"`
}

// NewGame creates an empty game under code with a freshly generated task
// catalog and the fixed round duration.
func NewGame(code string) *Game {
	return &Game{
		Code:           code,
		Players:        []*Player{},
		Tasks:          GenerateCatalog(),
		DurationMS:     GameDuration.Milliseconds(),
		CompletedTasks: map[string]CompletionRecord{},
	}
}

// FindPlayer returns the player with the given id, or nil.
func (g *Game) FindPlayer(id string) *Player {
	if id == "" {
		return nil
	}
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindPlayerByName returns the player with the given name (exact,
// case-sensitive match), or nil.
func (g *Game) FindPlayerByName(name string) *Player {
	for _, p := range g.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Remaining is the time left in the round as of now, floored at zero. Before
// the round starts it is the full duration.
func (g *Game) Remaining(now time.Time) time.Duration {
	total := time.Duration(g.DurationMS) * time.Millisecond
	if g.StartTime == nil {
		return total
	}
	rem := total - now.Sub(*g.StartTime)
	if rem < 0 {
		return 0
	}
	return rem
}

// Status derives the game phase as of now. Finished-ness is a point-in-time
// view; nothing ever writes it back to the record.
func (g *Game) Status(now time.Time) GameStatus {
	switch {
	case g.StartTime == nil:
		return GameWaiting
	case g.EndTime != nil || g.Remaining(now) <= 0:
		return GameFinished
	default:
		return GamePlaying
	}
}
