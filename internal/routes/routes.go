package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LikithaGatta/PlatePlanner/internal/handlers"
	"github.com/LikithaGatta/PlatePlanner/internal/middleware"
)

type Deps struct {
	JWTSecret string
	Auth      *handlers.AuthHandler
	Forum     *handlers.ForumHandler
	Meals     *handlers.MealHandler
	MealPlans *handlers.MealPlanHandler
}

func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")
	protected := middleware.Protected(d.JWTSecret)

	AuthRoutes(api, d.Auth, protected)
	ForumRoutes(api, d.Forum, protected)
	MealRoutes(api, d.Meals, protected)
	MealPlanRoutes(api, d.MealPlans, protected)
}
