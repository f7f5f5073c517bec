package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cleaningparty/internal/model"
)

// MongoStore is the durable backend: one document per game in the games
// collection, replaced whole on every write. Update here is a plain
// read-apply-replace, so concurrent updates to the same game follow
// last-write-wins like the non-locking Redis path.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a Mongo-backed game store.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		collection: db.Collection("games"),
	}
}

func (s *MongoStore) Get(ctx context.Context, code string) (*model.Game, error) {
	var game model.Game
	err := s.collection.FindOne(ctx, map[string]interface{}{"code": code}).Decode(&game)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *MongoStore) Put(ctx context.Context, code string, game *model.Game) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, map[string]interface{}{"code": code}, game, opts)
	return err
}

func (s *MongoStore) Update(ctx context.Context, code string, fn func(*model.Game) (*model.Game, error)) (*model.Game, error) {
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
