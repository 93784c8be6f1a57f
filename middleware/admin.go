package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// IsAdminEmail reports whether the given email belongs to the configured admin set.
func IsAdminEmail(email string, admins []string) bool {
	for _, admin := range admins {
		if strings.EqualFold(strings.TrimSpace(admin), strings.TrimSpace(email)) {
			return true
		}
	}
	return false
}

// AdminOnly returns a middleware that rejects callers whose email is not in
// the configured admin set. Must run after JWTMiddleware.
func AdminOnly(admins []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("email").(string)
		if !ok || email == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		if !IsAdminEmail(email, admins) {
			return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
		}

		return c.Next()
	}
}
