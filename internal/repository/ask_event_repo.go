package repository

import (
	"askgate/internal/model"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultEventLimit = 20
	MaxEventLimit     = 100
)

// AskEventRepo handles MongoDB operations for ask events
type AskEventRepo interface {
	Record(ctx context.Context, event *model.AskEvent) error
	ListRecent(ctx context.Context, limit int) ([]*model.AskEvent, error)
	EnsureIndexes(ctx context.Context) error
}

type askEventRepo struct {
	collection *mongo.Collection
}

// NewAskEventRepo creates a new ask event repository
func NewAskEventRepo(db *mongo.Database) AskEventRepo {
	return &askEventRepo{
		collection: db.Collection("ask_events"),
	}
}

func (r *askEventRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return err
}

// Record upserts by event ID so a retried write never duplicates
func (r *askEventRepo) Record(ctx context.Context, event *model.AskEvent) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": event.ID}, event, opts)
	return err
}

// ListRecent returns the newest events first. The limit is clamped to [1, MaxEventLimit].
func (r *askEventRepo) ListRecent(ctx context.Context, limit int) ([]*model.AskEvent, error) {
	limit = ClampEventLimit(limit)

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]*model.AskEvent, 0, limit)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ClampEventLimit applies the default for non-positive limits and caps the rest
func ClampEventLimit(limit int) int {
	if limit <= 0 {
		return DefaultEventLimit
	}
	if limit > MaxEventLimit {
		return MaxEventLimit
	}
	return limit
}
