// file: internals/route/index.go
package routes

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	databases "bimbelku_backend/internals/databases"
	attendanceRoute "bimbelku_backend/internals/features/school/attendance/route"
	courseGroupRoute "bimbelku_backend/internals/features/school/course_groups/route"
	paymentRoute "bimbelku_backend/internals/features/school/payments/route"
	roomRoute "bimbelku_backend/internals/features/school/rooms/route"
	sessionRoute "bimbelku_backend/internals/features/school/sessions/route"
	studentRoute "bimbelku_backend/internals/features/school/students/route"
	teacherRoute "bimbelku_backend/internals/features/school/teachers/route"
	authRoute "bimbelku_backend/internals/features/users/auth/route"
	authmw "bimbelku_backend/internals/middlewares/auth"
)

var startTime = time.Now()

// SetupRoutes — base + /api (public) + /api/a (admin, JWT)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bimbelku backend jalan 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := databases.DB.DB()
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})

	api := app.Group("/api")

	admin := api.Group("/a",
		authmw.AuthJWT(authmw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authmw.OnlyRoles("admin", "staff"),
	)

	authRoute.AuthRoutes(api, admin, db, v)

	roomRoute.ClassRoomAdminRoutes(admin, db, v)
	teacherRoute.TeacherAdminRoutes(admin, db, v)
	courseGroupRoute.CourseGroupAdminRoutes(admin, db, v)
	sessionRoute.ClassSessionAdminRoutes(admin, db, v)
	studentRoute.StudentAdminRoutes(admin, db, v)
	paymentRoute.PaymentAdminRoutes(admin, db, v)
	attendanceRoute.AttendanceAdminRoutes(admin, db, v)
}
