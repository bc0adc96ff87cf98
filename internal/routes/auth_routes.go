package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LikithaGatta/PlatePlanner/internal/handlers"
)

func AuthRoutes(api fiber.Router, h *handlers.AuthHandler, protected fiber.Handler) {
	auth := api.Group("/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/reset-password", h.ResetPassword)
	auth.Get("/profile", protected, h.GetProfile)
	auth.Put("/profile", protected, h.UpdateProfile)
}
