package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"cleaningparty/internal/model"
)

// RedisStore is the primary backend. Each game is one JSON value under
// game:<code> with a TTL, so abandoned rooms expire on their own.
//
// With optimistic locking off, Update is a plain get-apply-set and the last
// writer wins in full. With it on, Update runs under WATCH so a concurrent
// write to the same key voids the transaction, and the whole read-apply-write
// is retried up to the configured budget before giving up with ErrConflict.
type RedisStore struct {
	client  *redis.Client
	ttl     time.Duration
	lock    bool
	retries int
}

// NewRedisStore creates a Redis-backed game store.
func NewRedisStore(client *redis.Client, ttl time.Duration, optimisticLock bool, retries int) *RedisStore {
	if retries < 1 {
		retries = 1
	}
	return &RedisStore{
		client:  client,
		ttl:     ttl,
		lock:    optimisticLock,
		retries: retries,
	}
}

func (s *RedisStore) key(code string) string {
	return "game:" + code
}

func (s *RedisStore) Get(ctx context.Context, code string) (*model.Game, error) {
	data, err := s.client.Get(ctx, s.key(code)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var game model.Game
	if err := json.Unmarshal([]byte(data), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *RedisStore) Put(ctx context.Context, code string, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(code), data, s.ttl).Err()
}

func (s *RedisStore) Update(ctx context.Context, code string, fn func(*model.Game) (*model.Game, error)) (*model.Game, error) {
	if !s.lock {
		game, err := s.Get(ctx, code)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		next, err := fn(game)
		if err != nil {
			return nil, err
		}
		if err := s.Put(ctx, code, next); err != nil {
			return nil, err
		}
		return next, nil
	}

	key := s.key(code)
	var result *model.Game

	apply := func(tx *redis.Tx) error {
		var game *model.Game
		data, err := tx.Get(ctx, key).Result()
		switch {
		case err == redis.Nil:
			game = nil
		case err != nil:
			return err
		default:
			game = &model.Game{}
			if err := json.Unmarshal([]byte(data), game); err != nil {
				return err
			}
		}

		next, err := fn(game)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		if err == nil {
			result = next
		}
		return err
	}

	for attempt := 0; attempt < s.retries; attempt++ {
		err := s.client.Watch(ctx, apply, key)
		if err == redis.TxFailedErr {
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return nil, ErrConflict
}
