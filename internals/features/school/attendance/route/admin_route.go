// file: internals/features/school/attendance/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/school/attendance/controller"
)

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAttendanceController(db, v)
	g := r.Group("/attendances")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Delete("/:id", ctl.Delete)
}
