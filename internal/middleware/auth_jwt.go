package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/LikithaGatta/PlatePlanner/dto"
)

type authClaims struct {
	UID string `json:"uid,omitempty"` // some issuers put the uid here instead of sub
	jwt.RegisteredClaims
}

// Protected verifies the Authorization bearer token and stores the caller's
// user id in Locals("user_id"). Requests without a valid token never reach
// the handlers.
func Protected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Error: "No token provided"})
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims authClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				// HMAC HS256 only
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fiber.ErrUnauthorized
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Error: "Invalid token"})
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Error: "Invalid token"})
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}
