package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/LikithaGatta/PlatePlanner/dto"
	mid "github.com/LikithaGatta/PlatePlanner/internal/middleware"
	"github.com/LikithaGatta/PlatePlanner/services"
)

type AuthHandler struct {
	Svc *services.AuthService
}

// Register godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.RegisterReq  true  "Registration payload"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "email and password are required"})
	}

	token, user, err := h.Svc.Register(c.Context(), body)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "User already exists"})
		}
		log.Println("register:", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Error creating user"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Token:  token,
		UserID: user.ID.Hex(),
		User:   dto.NewUserInfo(user),
	})
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body      dto.LoginReq  true  "Credentials"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	token, user, err := h.Svc.Login(c.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "User not found"})
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "Invalid credentials"})
		default:
			log.Println("login:", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: "Login failed"})
		}
	}

	return c.JSON(dto.AuthResponse{
		Token:  token,
		UserID: user.ID.Hex(),
		User:   dto.NewUserInfo(user),
	})
}

// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var body dto.ResetPasswordReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "invalid body"})
	}
	if body.Email == "" || body.NewPassword == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "Email and new password are required"})
	}

	if err := h.Svc.ResetPassword(c.Context(), body.Email, body.NewPassword); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "User not found"})
		}
		log.Println("reset password:", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Password reset failed"})
	}
	return c.JSON(dto.MessageResponse{Message: "Password reset successful"})
}

// GET /api/auth/profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	uid, ok := mid.ObjectIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	user, err := h.Svc.GetProfile(c.Context(), uid)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "User not found"})
		}
		log.Println("get profile:", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Error: "Failed to load profile"})
	}
	return c.JSON(dto.NewUserInfo(user))
}

// PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	uid, ok := mid.ObjectIDFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(dto.ErrorResponse{Error: "unauthorized"})
	}

	var body dto.UpdateProfileReq
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Error: "invalid body"})
	}

	user, err := h.Svc.UpdateProfile(c.Context(), uid, body)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).
				JSON(dto.ErrorResponse{Error: "User not found"})
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.ErrorResponse{Error: "Email already in use"})
		default:
			log.Println("update profile:", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.ErrorResponse{Error: "Profile update failed"})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"user":    dto.NewUserInfo(user),
	})
}
