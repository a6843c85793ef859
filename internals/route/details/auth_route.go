// file: internals/route/details/auth_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "gerejaku_backend/internals/features/users/auth/controller"
	"gerejaku_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik untuk register/login/refresh/logout
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Post("/refresh", ctrl.Refresh)
	auth.Post("/logout", ctrl.Logout)
}
