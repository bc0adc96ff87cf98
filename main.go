package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"github.com/LikithaGatta/PlatePlanner/bootstrap"
	"github.com/LikithaGatta/PlatePlanner/configs"
	"github.com/LikithaGatta/PlatePlanner/database"
	_ "github.com/LikithaGatta/PlatePlanner/docs"
	"github.com/LikithaGatta/PlatePlanner/internal/handlers"
	"github.com/LikithaGatta/PlatePlanner/internal/repository"
	"github.com/LikithaGatta/PlatePlanner/internal/routes"
	"github.com/LikithaGatta/PlatePlanner/services"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

// @title        PlatePlanner API
// @version      1.0
// @description  Meal planning and diet tracking backend: accounts, meal log, meal plans and a community forum.
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := configs.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)
	db := client.Database(cfg.DBName)

	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	postRepo := repository.NewPostRepository(db)
	userRepo := repository.NewUserRepository(db)
	mealRepo := repository.NewMealRepository(db)
	mealPlanRepo := repository.NewMealPlanRepository(db)

	forumSvc := services.NewForumService(postRepo, userRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/docs/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend is working")
	})

	routes.Register(app, routes.Deps{
		JWTSecret: cfg.JWTSecret,
		Auth:      &handlers.AuthHandler{Svc: authSvc},
		Forum:     &handlers.ForumHandler{Svc: forumSvc},
		Meals:     &handlers.MealHandler{Repo: mealRepo},
		MealPlans: &handlers.MealPlanHandler{Repo: mealPlanRepo},
	})

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
