package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LikithaGatta/PlatePlanner/internal/handlers"
)

func ForumRoutes(api fiber.Router, h *handlers.ForumHandler, protected fiber.Handler) {
	forum := api.Group("/forum", protected)

	forum.Get("/", h.List)
	forum.Post("/", h.Create)
	forum.Put("/:id", h.Update)
	forum.Delete("/:id", h.Delete)
	forum.Post("/:id/like", h.ToggleLike)
}
