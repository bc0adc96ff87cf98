package dto

type SaveMealPlanReq struct {
	Date      string `json:"date" validate:"required"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
}
