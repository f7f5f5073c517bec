package store

import (
	"context"
	"encoding/json"
	"sync"

	"cleaningparty/internal/model"
)

// MemoryStore keeps serialized game records in a mutex-guarded map. Intended
// for tests and single-node development. Records go through a JSON round
// trip so callers never share pointers with the store, same as the networked
// backends.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string][]byte),
	}
}

func (s *MemoryStore) Get(ctx context.Context, code string) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.decode(code)
}

func (s *MemoryStore) Put(ctx context.Context, code string, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[code] = data
	return nil
}

// Update applies fn atomically under the store lock, so concurrent updates
// to the same game never lose writes in this backend.
func (s *MemoryStore) Update(ctx context.Context, code string, fn func(*model.Game) (*model.Game, error)) (*model.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.decode(code)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	next, err := fn(game)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(next)
	if err != nil {
		return nil, err
	}
	s.games[code] = data
	return next, nil
}

// decode assumes the caller holds at least a read lock.
func (s *MemoryStore) decode(code string) (*model.Game, error) {
	data, ok := s.games[code]
	if !ok {
		return nil, ErrNotFound
	}
	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}
