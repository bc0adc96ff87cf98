package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LikithaGatta/PlatePlanner/internal/handlers"
)

func MealPlanRoutes(api fiber.Router, h *handlers.MealPlanHandler, protected fiber.Handler) {
	plans := api.Group("/meal-plans", protected)

	plans.Post("/", h.Save)
	plans.Get("/", h.List)
	plans.Get("/:date", h.GetByDate)
}
