package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/LikithaGatta/PlatePlanner/dto"
	mid "github.com/LikithaGatta/PlatePlanner/internal/middleware"
	"github.com/LikithaGatta/PlatePlanner/internal/repository"
	"github.com/LikithaGatta/PlatePlanner/model"
)

type MealHandler struct {
	Repo *repository.MealRepository
}

// POST /api/meals
func (h *MealHandler) Create(c *fiber.Ctx) error {
	uid, ok := mid.ObjectIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	var body dto.CreateMealReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if body.Name == "" || body.Date == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "name and date are required"})
	}
	if !model.ValidMealType(body.MealType) {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "invalid mealType"})
	}

	meal := &model.Meal{
		UserID:    uid,
		Name:      body.Name,
		Calories:  body.Calories,
		MealType:  body.MealType,
		Date:      body.Date,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.Insert(c.Context(), meal); err != nil {
		log.Println("create meal:", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Failed to log meal"})
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

// GET /api/meals?date=YYYY-MM-DD
func (h *MealHandler) List(c *fiber.Ctx) error {
	uid, ok := mid.ObjectIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	meals, err := h.Repo.ListByUser(c.Context(), uid, c.Query("date"))
	if err != nil {
		log.Println("list meals:", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Failed to fetch meals"})
	}
	return c.JSON(meals)
}

// DELETE /api/meals/:id — owner only
func (h *MealHandler) Delete(c *fiber.Ctx) error {
	uid, ok := mid.ObjectIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	mealID, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Meal not found"})
	}

	meal, err := h.Repo.FindByID(c.Context(), mealID)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Error: "Meal not found"})
	}
	if err != nil {
		log.Println("delete meal:", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Failed to delete meal"})
	}
	if meal.UserID != uid {
		return c.Status(fiber.StatusForbidden).
			JSON(dto.ErrorResponse{Error: "Forbidden"})
	}

	if err := h.Repo.DeleteByID(c.Context(), mealID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Println("delete meal:", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Failed to delete meal"})
	}
	return c.JSON(dto.MessageResponse{Message: "Meal deleted"})
}
