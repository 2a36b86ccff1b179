package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helperAuth "tahfidz_backend/internals/helpers/auth"
)

// OnlyRoles validasi role + custom error message
func OnlyRoles(customForbiddenMessage string, allowedRoles ...string) fiber.Handler {
	if customForbiddenMessage == "" {
		customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
	}
	return func(c *fiber.Ctx) error {
		role := helperAuth.GetRole(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}
		if helperAuth.HasAnyRole(c, allowedRoles...) {
			return c.Next()
		}
		log.Printf("[DEBUG] Role %q ditolak untuk %s %s", role, c.Method(), c.Path())
		return fiber.NewError(fiber.StatusForbidden, customForbiddenMessage)
	}
}
