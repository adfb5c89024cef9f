// file: internals/middlewares/setup.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// SetupMiddlewares memasang middleware dasar (urutan penting:
// recovery paling luar supaya panic handler lain tetap ketangkap).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(RegisterRateLimiter())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:reqid} ${status} ${latency} ${method} ${path}\n",
	}))
}
