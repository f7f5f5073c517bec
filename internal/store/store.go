package store

import (
	"context"
	"errors"

	"cleaningparty/internal/model"
)

var (
	// ErrNotFound is returned when no record exists under the given code.
	ErrNotFound = errors.New("game not found")

	// ErrConflict is returned when an optimistic update loses its race more
	// times than the configured retry budget allows.
	ErrConflict = errors.New("concurrent update conflict")
)

// GameStore is the session store adapter: a key-value mapping from game code
// to the full serialized game record. Get and Put carry no isolation; Update
// is each backend's read-modify-write, atomic where the backend can make it
// so and last-write-wins where it cannot.
type GameStore interface {
	Get(ctx context.Context, code string) (*model.Game, error)
	Put(ctx context.Context, code string, game *model.Game) error

	// Update loads the record under code, passes it to fn (nil when absent),
	// and writes back whatever fn returns. An error from fn aborts the write
	// and is returned unwrapped.
	Update(ctx context.Context, code string, fn func(*model.Game) (*model.Game, error)) (*model.Game, error)
}
