// file: internals/features/school/payments/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/school/payments/controller"
)

func PaymentAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewPaymentController(db, v)
	g := r.Group("/payments")
	g.Get("/", ctl.List)
	g.Get("/monthly-status", ctl.MonthlyStatus)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Delete("/:id", ctl.Delete)
}
