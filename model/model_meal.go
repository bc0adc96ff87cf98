package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

func ValidMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// Meal is a single logged meal entry.
type Meal struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	UserID    bson.ObjectID `json:"userId"    bson:"user_id"`
	Name      string        `json:"name"      bson:"name"`
	Calories  int           `json:"calories"  bson:"calories"`
	MealType  string        `json:"mealType"  bson:"meal_type"`
	Date      string        `json:"date"      bson:"date"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
