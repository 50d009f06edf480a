package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecolearn/internal/model"
)

type PostRepo interface {
	Create(ctx context.Context, post *model.Post) error
	List(ctx context.Context, limit int) ([]*model.Post, error)
	Like(ctx context.Context, id string) error
}

type postRepo struct {
	collection *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepo{
		collection: db.Collection("posts"),
	}
}

func (r *postRepo) Create(ctx context.Context, post *model.Post) error {
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

func (r *postRepo) List(ctx context.Context, limit int) ([]*model.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []*model.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) Like(ctx context.Context, id string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"likes": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
