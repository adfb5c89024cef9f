// file: internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "bimbelku_backend/internals/helpers"
)

// OnlyRoles — batasi akses ke role tertentu. Dipasang SETELAH AuthJWT
// (baca user_role dari locals).
func OnlyRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: role tidak ditemukan")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden: role tidak diizinkan")
	}
}
