package dto

type CreateMealReq struct {
	Name     string `json:"name" validate:"required"`
	Calories int    `json:"calories"`
	MealType string `json:"mealType" validate:"required"`
	Date     string `json:"date" validate:"required"`
}
