package middleware

import (
	"strings"

	"devclub-portal/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalMemberID = "member_id"
	LocalEmail    = "email"
)

// AuthRequired rejects requests without a valid bearer token and stores the
// member id and email from the token in Locals.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization header"})
		}

		claims, err := utils.ValidateToken(strings.TrimSpace(tokenString), secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(LocalMemberID, claims.MemberID)
		c.Locals(LocalEmail, claims.Email)
		return c.Next()
	}
}
