package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID                  bson.ObjectID `json:"id"                  bson:"_id,omitempty"`
	Name                string        `json:"name"                bson:"name"`
	Email               string        `json:"email"               bson:"email"`
	Password            string        `json:"-"                   bson:"password"`
	FirstName           string        `json:"firstName"           bson:"first_name,omitempty"`
	LastName            string        `json:"lastName"            bson:"last_name,omitempty"`
	Allergies           []string      `json:"allergies"           bson:"allergies"`
	DietaryRestrictions []string      `json:"dietaryRestrictions" bson:"dietary_restrictions"`
	Gender              string        `json:"gender,omitempty"    bson:"gender,omitempty"`
	Height              float64       `json:"height,omitempty"    bson:"height,omitempty"`
	Weight              float64       `json:"weight,omitempty"    bson:"weight,omitempty"`
	GoalType            string        `json:"goalType,omitempty"  bson:"goal_type,omitempty"`
	CalorieGoal         int           `json:"calorieGoal,omitempty" bson:"calorie_goal,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"           bson:"created_at"`
	UpdatedAt           time.Time     `json:"updatedAt"           bson:"updated_at"`
}

// DisplayName is what gets snapshotted onto forum posts.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
