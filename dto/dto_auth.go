package dto

import "github.com/LikithaGatta/PlatePlanner/model"

type RegisterReq struct {
	Name      string `json:"name"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordReq struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// UpdateProfileReq is a partial update: nil fields are left untouched.
type UpdateProfileReq struct {
	FirstName           *string   `json:"firstName,omitempty"`
	LastName            *string   `json:"lastName,omitempty"`
	Email               *string   `json:"email,omitempty"`
	Gender              *string   `json:"gender,omitempty"`
	Height              *float64  `json:"height,omitempty"`
	Weight              *float64  `json:"weight,omitempty"`
	GoalType            *string   `json:"goalType,omitempty"`
	CalorieGoal         *int      `json:"calorieGoal,omitempty"`
	Allergies           *[]string `json:"allergies,omitempty"`
	DietaryRestrictions *[]string `json:"dietaryRestrictions,omitempty"`
}

// UserInfo mirrors the user payload the client stores in its session.
type UserInfo struct {
	Username            string   `json:"username"`
	Email               string   `json:"email"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Allergies           []string `json:"allergies"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Gender              string   `json:"gender,omitempty"`
	Height              float64  `json:"height,omitempty"`
	Weight              float64  `json:"weight,omitempty"`
	GoalType            string   `json:"goalType,omitempty"`
	CalorieGoal         int      `json:"calorieGoal,omitempty"`
}

func NewUserInfo(u *model.User) UserInfo {
	info := UserInfo{
		Username:            u.Email,
		Email:               u.Email,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		Allergies:           u.Allergies,
		DietaryRestrictions: u.DietaryRestrictions,
		Gender:              u.Gender,
		Height:              u.Height,
		Weight:              u.Weight,
		GoalType:            u.GoalType,
		CalorieGoal:         u.CalorieGoal,
	}
	if info.FirstName == "" {
		info.FirstName = u.Name
	}
	if info.Allergies == nil {
		info.Allergies = []string{}
	}
	if info.DietaryRestrictions == nil {
		info.DietaryRestrictions = []string{}
	}
	return info
}

type AuthResponse struct {
	Token  string   `json:"token"`
	UserID string   `json:"userId"`
	User   UserInfo `json:"user"`
}
