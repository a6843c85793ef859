package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"gerejaku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global (urutan penting)
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
