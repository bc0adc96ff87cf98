package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MealPlan holds one user's plan for one date (YYYY-MM-DD). The collection
// carries a unique (user_id, date) index, so saves go through an upsert.
type MealPlan struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Date      string        `json:"date"      bson:"date"`
	Breakfast string        `json:"breakfast" bson:"breakfast,omitempty"`
	Lunch     string        `json:"lunch"     bson:"lunch,omitempty"`
	Dinner    string        `json:"dinner"    bson:"dinner,omitempty"`
	Snacks    string        `json:"snacks"    bson:"snacks,omitempty"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}
