package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LikithaGatta/PlatePlanner/internal/handlers"
)

func MealRoutes(api fiber.Router, h *handlers.MealHandler, protected fiber.Handler) {
	meals := api.Group("/meals", protected)

	meals.Post("/", h.Create)
	meals.Get("/", h.List)
	meals.Delete("/:id", h.Delete)
}
