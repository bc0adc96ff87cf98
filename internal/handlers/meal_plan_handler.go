package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/LikithaGatta/PlatePlanner/dto"
	mid "github.com/LikithaGatta/PlatePlanner/internal/middleware"
	"github.com/LikithaGatta/PlatePlanner/internal/repository"
	"github.com/LikithaGatta/PlatePlanner/model"
)

type MealPlanHandler struct {
	Repo *repository.MealPlanRepository
}

// POST /api/meal-plans — save or update the plan for a date
func (h *MealPlanHandler) Save(c *fiber.Ctx) error {
	uid, ok := mid.ObjectIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	var body dto.SaveMealPlanReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if body.Date == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "Date is required"})
	}

	plan, err := h.Repo.Upsert(c.Context(), uid, model.MealPlan{
		Date:      body.Date,
		Breakfast: body.Breakfast,
		Lunch:     body.Lunch,
		Dinner:    body.Dinner,
		Snacks:    body.Snacks,
	})
	if err != nil {
		log.Println("save meal plan:", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Server error saving meal plan"})
	}
	return c.JSON(plan)
}

// GET /api/meal-plans
func (h *MealPlanHandler) List(c *fiber.Ctx) error {
	uid, ok := mid.ObjectIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	plans, err := h.Repo.ListByUser(c.Context(), uid)
	if err != nil {
		log.Println("list meal plans:", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Failed to fetch meal plans"})
	}
	return c.JSON(plans)
}

// GET /api/meal-plans/:date — empty object when no plan exists for the date
func (h *MealPlanHandler) GetByDate(c *fiber.Ctx) error {
	uid, ok := mid.ObjectIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	plan, err := h.Repo.FindByUserDate(c.Context(), uid, c.Params("date"))
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(fiber.Map{})
	}
	if err != nil {
		log.Println("get meal plan:", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Failed to fetch meal plan"})
	}
	return c.JSON(plan)
}
