// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/users/auth/controller"
)

// AuthRoutes — public: register/login; authed: me/logout
func AuthRoutes(public fiber.Router, authed fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAuthController(db, v)

	g := public.Group("/auth")
	g.Post("/register", ctl.Register)
	g.Post("/login", ctl.Login)

	a := authed.Group("/auth")
	a.Get("/me", ctl.Me)
	a.Post("/logout", ctl.Logout)
}
