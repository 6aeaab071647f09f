package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/repairconnect/api/internal/domain"
	apperrors "github.com/repairconnect/api/pkg/util"
)

// RequireAdmin ensures the authenticated caller holds the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("missing token")
		}
		if claims.Role != domain.RoleAdmin {
			return apperrors.NewForbidden("forbidden")
		}
		return c.Next()
	}
}
