package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/LikithaGatta/PlatePlanner/model"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var u model.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Insert(ctx context.Context, u *model.User) error {
	u.ID = bson.NewObjectID()
	_, err := r.Col.InsertOne(ctx, u)
	return err
}

func (r *UserRepository) Save(ctx context.Context, u *model.User) error {
	res, err := r.Col.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EmailTaken reports whether another user (not exclude) already owns email.
func (r *UserRepository) EmailTaken(ctx context.Context, email string, exclude bson.ObjectID) (bool, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{
		"email": email,
		"_id":   bson.M{"$ne": exclude},
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
