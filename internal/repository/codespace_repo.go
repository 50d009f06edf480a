package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ecolearn/internal/model"
)

var (
	// ErrDuplicateCode is returned by Create when the join code is taken.
	ErrDuplicateCode = errors.New("codespace code already exists")
	// ErrNotFound is returned by updates that match no record.
	ErrNotFound = errors.New("record not found")
)

type CodespaceRepo interface {
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, cs *model.Codespace) error
	GetByCode(ctx context.Context, code string) (*model.Codespace, error)
	Update(ctx context.Context, code string, upd *model.CodespaceUpdate) error
}

type codespaceRepo struct {
	collection *mongo.Collection
}

func NewCodespaceRepo(db *mongo.Database) CodespaceRepo {
	return &codespaceRepo{
		collection: db.Collection("codespaces"),
	}
}

func (r *codespaceRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *codespaceRepo) Create(ctx context.Context, cs *model.Codespace) error {
	_, err := r.collection.InsertOne(ctx, cs)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateCode
	}
	return err
}

func (r *codespaceRepo) GetByCode(ctx context.Context, code string) (*model.Codespace, error) {
	var cs model.Codespace
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&cs)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // codespace not found
		}
		return nil, err
	}
	return &cs, nil
}

// Update applies the allowed post-creation mutations only. Code, owner and
// expiry are immutable.
func (r *codespaceRepo) Update(ctx context.Context, code string, upd *model.CodespaceUpdate) error {
	set := bson.M{}
	if upd.Active != nil {
		set["active"] = *upd.Active
	}
	if upd.QuizID != nil {
		set["quizId"] = *upd.QuizID
	}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"code": code}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
