// file: internals/features/school/students/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewStudentController(db, v)
	g := r.Group("/students")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/enrollments", ctl.ListEnrollments)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)

	e := r.Group("/enrollments")
	e.Post("/", ctl.Enroll)
	e.Delete("/:enrollment_id", ctl.Unenroll)
}
