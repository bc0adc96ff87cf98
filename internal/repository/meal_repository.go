package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/LikithaGatta/PlatePlanner/model"
)

type MealRepository struct {
	Col *mongo.Collection
}

func NewMealRepository(db *mongo.Database) *MealRepository {
	return &MealRepository{Col: db.Collection("meals")}
}

func (r *MealRepository) Insert(ctx context.Context, m *model.Meal) error {
	m.ID = bson.NewObjectID()
	_, err := r.Col.InsertOne(ctx, m)
	return err
}

// ListByUser returns the user's meal log, optionally restricted to one date.
func (r *MealRepository) ListByUser(ctx context.Context, userID bson.ObjectID, date string) ([]model.Meal, error) {
	filter := bson.M{"user_id": userID}
	if date != "" {
		filter["date"] = date
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})

	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	meals := []model.Meal{}
	if err := cur.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *MealRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Meal, error) {
	var m model.Meal
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MealRepository) DeleteByID(ctx context.Context, id bson.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
