package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

const (
	HeaderUserID      = "X-User-ID"
	HeaderUserRole    = "X-User-Role"
	HeaderPermissions = "X-User-Permissions"
)

// RequireAuth rejects requests that arrive without an identity header.
// The gateway is responsible for validating tokens; by the time a
// request reaches this service the headers are trusted.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		userID := c.Get(HeaderUserID)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing user identity",
			})
		}
		return c.Next()
	}
}

// RequireRole allows the request through when the caller holds any of
// the given roles. Admin always passes.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		userRole := c.Get(HeaderUserRole)
		if userRole == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing user role",
			})
		}
		if strings.EqualFold(userRole, "admin") {
			return c.Next()
		}
		for _, role := range roles {
			if strings.EqualFold(userRole, role) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient role",
		})
	}
}

// RequirePermission checks the comma-separated permission list the
// gateway forwards on each request.
func RequirePermission(permission string) fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := c.Get(HeaderPermissions)
		if raw == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Missing permissions",
			})
		}
		for _, p := range strings.Split(raw, ",") {
			if strings.TrimSpace(p) == permission {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Insufficient permissions",
		})
	}
}

// UserID returns the authenticated user id forwarded by the gateway.
func UserID(c fiber.Ctx) string {
	return c.Get(HeaderUserID)
}

// UserRole returns the authenticated role forwarded by the gateway.
func UserRole(c fiber.Ctx) string {
	return c.Get(HeaderUserRole)
}
