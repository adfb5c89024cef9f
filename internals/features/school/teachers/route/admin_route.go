// file: internals/features/school/teachers/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/school/teachers/controller"
)

func TeacherAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewTeacherController(db, v)
	g := r.Group("/teachers")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/hours", ctl.Hours)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
