package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cleaningparty/internal/model"
	"cleaningparty/internal/store"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrGameNotFound    = errors.New("game not found")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrNameTaken       = errors.New("player name already taken")
	ErrPartnerRequired = errors.New("this task requires a partner")
)

// Points awarded for a task whose definition carries none.
const defaultTaskPoints = 10

// GameService owns every game-mutation rule: admission, partnership, task
// completion and scoring, round start. All state lives in the store; each
// operation reads the full game record, applies one rule, and writes the
// full record back.
type GameService struct {
	store store.GameStore
	now   func() time.Time
	newID func() string
}

// NewGameService creates a game service on top of the given store.
func NewGameService(st store.GameStore) *GameService {
	return &GameService{
		store: st,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Join admits a player into the game under code, creating the game (with a
// freshly generated task catalog) on the first join for an unknown code.
// Names are unique per game, exact case-sensitive match. Returns the new
// player's id and the updated snapshot.
func (s *GameService) Join(ctx context.Context, code, name string) (string, *model.Game, error) {
	if code == "" || name == "" {
		return "", nil, fmt.Errorf("%w: code and playerName are required", ErrInvalidInput)
	}

	var playerID string
	game, err := s.store.Update(ctx, code, func(g *model.Game) (*model.Game, error) {
		if g == nil {
			g = model.NewGame(code)
		}
		if g.FindPlayerByName(name) != nil {
			return nil, ErrNameTaken
		}
		playerID = s.newID()
		g.Players = append(g.Players, &model.Player{
			ID:   playerID,
			Name: name,
		})
		return g, nil
	})
	if err != nil {
		return "", nil, err
	}
	return playerID, game, nil
}

// State returns the full game record as persisted. No mutation.
func (s *GameService) State(ctx context.Context, code string) (*model.Game, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	game, err := s.store.Get(ctx, code)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	return game, err
}

// Partner links two players as a symmetric pair. Reassignment first clears
// each side's previous partner's reverse pointer, so no player is left
// pointing at someone who no longer points back.
func (s *GameService) Partner(ctx context.Context, code, playerID, targetID string) (*model.Game, error) {
	if playerID == "" || targetID == "" {
		return nil, fmt.Errorf("%w: playerId and targetPlayerId are required", ErrInvalidInput)
	}
	if playerID == targetID {
		return nil, fmt.Errorf("%w: cannot partner with yourself", ErrInvalidInput)
	}

	return s.update(ctx, code, func(g *model.Game) error {
		player := g.FindPlayer(playerID)
		target := g.FindPlayer(targetID)
		if player == nil || target == nil {
			return ErrPlayerNotFound
		}

		for _, p := range []*model.Player{player, target} {
			if prev := g.FindPlayer(p.Partner); prev != nil && prev.Partner == p.ID {
				prev.Partner = ""
			}
		}

		player.Partner = target.ID
		target.Partner = player.ID
		return nil
	})
}

// CompleteTask records a completion and awards points. The first completion
// of a task id wins; repeats succeed without changing anyone's score. The
// partnerRequired flag is the caller's own declaration and is trusted as-is,
// matching the original client contract; the catalog's flag is not
// re-validated.
func (s *GameService) CompleteTask(ctx context.Context, code, playerID, taskID string, partnerRequired bool) (*model.Game, error) {
	if playerID == "" || taskID == "" {
		return nil, fmt.Errorf("%w: playerId and taskId are required", ErrInvalidInput)
	}

	return s.update(ctx, code, func(g *model.Game) error {
		player := g.FindPlayer(playerID)
		if player == nil {
			return ErrPlayerNotFound
		}
		if partnerRequired && player.Partner == "" {
			return ErrPartnerRequired
		}
		if _, done := g.CompletedTasks[taskID]; done {
			return nil
		}

		task, ok := g.Tasks.Index()[taskID]
		if !ok {
			// Unknown task ids succeed without recording or scoring anything,
			// keeping completedTasks keys a subset of the catalog.
			return nil
		}

		g.CompletedTasks[taskID] = model.CompletionRecord{
			CompletedBy: player.ID,
			Partner:     player.Partner,
			Timestamp:   s.now(),
		}

		points := task.Points
		if points == 0 {
			points = defaultTaskPoints
		}
		player.Score += points
		player.TasksCompleted++

		// Partner is looked up fresh at completion time, not taken from the
		// stored record.
		if partner := g.FindPlayer(player.Partner); partner != nil {
			partner.Score += points
			partner.TasksCompleted++
		}
		return nil
	})
}

// Start stamps the round's start time. Repeat calls while a start time is
// already set are no-ops; the engine never writes EndTime, finished-ness
// stays a read-time derivation.
func (s *GameService) Start(ctx context.Context, code string) (*model.Game, error) {
	return s.update(ctx, code, func(g *model.Game) error {
		if g.StartTime == nil {
			now := s.now()
			g.StartTime = &now
		}
		return nil
	})
}

// update runs mutate against an existing game and persists the full record,
// including after mutations that turn out to be no-ops.
func (s *GameService) update(ctx context.Context, code string, mutate func(*model.Game) error) (*model.Game, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	return s.store.Update(ctx, code, func(g *model.Game) (*model.Game, error) {
		if g == nil {
			return nil, ErrGameNotFound
		}
		if err := mutate(g); err != nil {
			return nil, err
		}
		return g, nil
	})
}
