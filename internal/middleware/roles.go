package middleware

import (
	"slices"

	"github.com/DevITJAX/FlowOps/internal/dtos"
	"github.com/gofiber/fiber/v2"
)

// RequireRoles prüft, ob die im Context unter "role" gespeicherte globale Rolle
// einer der erlaubten Rollen (allowedRoles) entspricht.
func RequireRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status": "error",
				"error": dtos.ErrorResponse{
					Code:    fiber.StatusUnauthorized,
					Message: "Kein Zugriff, keine Rolle gefunden.",
				},
			})
		}

		if slices.Contains(allowedRoles, role) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status": "error",
			"error": dtos.ErrorResponse{
				Code:    fiber.StatusForbidden,
				Message: "Sie haben hier nicht zu melden",
			},
		})
	}
}
