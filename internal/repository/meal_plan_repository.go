package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/LikithaGatta/PlatePlanner/model"
)

type MealPlanRepository struct {
	Col *mongo.Collection
}

func NewMealPlanRepository(db *mongo.Database) *MealPlanRepository {
	return &MealPlanRepository{Col: db.Collection("meal_plans")}
}

// Upsert writes the plan for (user, date), creating it when absent. The
// unique (user_id, date) index keeps concurrent upserts to one document.
func (r *MealPlanRepository) Upsert(ctx context.Context, userID bson.ObjectID, req model.MealPlan) (*model.MealPlan, error) {
	now := time.Now().UTC()
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var plan model.MealPlan
	err := r.Col.FindOneAndUpdate(ctx,
		bson.M{"user_id": userID, "date": req.Date},
		bson.M{
			"$set": bson.M{
				"breakfast":  req.Breakfast,
				"lunch":      req.Lunch,
				"dinner":     req.Dinner,
				"snacks":     req.Snacks,
				"updated_at": now,
			},
			"$setOnInsert": bson.M{
				"user_id":    userID,
				"date":       req.Date,
				"created_at": now,
			},
		},
		opts,
	).Decode(&plan)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *MealPlanRepository) ListByUser(ctx context.Context, userID bson.ObjectID) ([]model.MealPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	plans := []model.MealPlan{}
	if err := cur.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *MealPlanRepository) FindByUserDate(ctx context.Context, userID bson.ObjectID, date string) (*model.MealPlan, error) {
	var plan model.MealPlan
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&plan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
