package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecolearn/internal/model"
)

// GameSessionRepo is an append-only store: sessions are written once when a
// play completes and never updated or deleted.
type GameSessionRepo interface {
	Create(ctx context.Context, session *model.GameSession) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*model.GameSession, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type gameSessionRepo struct {
	collection *mongo.Collection
}

func NewGameSessionRepo(db *mongo.Database) GameSessionRepo {
	return &gameSessionRepo{
		collection: db.Collection("game_sessions"),
	}
}

func (r *gameSessionRepo) Create(ctx context.Context, session *model.GameSession) error {
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *gameSessionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*model.GameSession, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "playedAt", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var sessions []*model.GameSession
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *gameSessionRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userId": userID})
}
