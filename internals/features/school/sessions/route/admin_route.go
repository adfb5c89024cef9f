// file: internals/features/school/sessions/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "bimbelku_backend/internals/features/school/sessions/controller"
)

// ClassSessionAdminRoutes — sesi bertanggal + exceptions + generate
func ClassSessionAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	sessionCtl := sessionController.NewClassSessionController(db, v)
	excCtl := sessionController.NewClassSessionExceptionController(db, v)

	sessions := admin.Group("/class-sessions")
	sessions.Get("/", sessionCtl.List)
	sessions.Post("/", sessionCtl.Create)
	sessions.Post("/generate", sessionCtl.Generate)
	sessions.Get("/:id", sessionCtl.GetByID)
	sessions.Patch("/:id", sessionCtl.Patch)
	sessions.Patch("/:id/status", sessionCtl.PatchStatus)
	sessions.Delete("/:id", sessionCtl.Delete)

	exceptions := admin.Group("/class-session-exceptions")
	exceptions.Get("/", excCtl.List)
	exceptions.Post("/", excCtl.Create)
	exceptions.Get("/:id", excCtl.GetByID)
	exceptions.Patch("/:id", excCtl.Patch)
	exceptions.Delete("/:id", excCtl.Delete)
}
