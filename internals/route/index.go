// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/configs"
	"gerejaku_backend/internals/constants"
	wartaRoute "gerejaku_backend/internals/features/warta/bulletins/route"
	authService "gerejaku_backend/internals/features/users/auth/service"
	authController "gerejaku_backend/internals/features/users/auth/controller"
	middleware "gerejaku_backend/internals/middlewares/auth"
	routeDetails "gerejaku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== STATIC =====================
	app.Static("/uploads", "./uploads")

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	wartaRoute.WartaPublicRoutes(public, db)
	routeDetails.CommunityPublicRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			BlacklistChecker:    authService.IsTokenBlacklisted(db),
			AllowCookieFallback: true,
		}),
	)
	authCtrl := authController.NewAuthController(db)
	private.Get("/me", authCtrl.Me)
	private.Put("/me/password", authCtrl.ChangePassword)
	routeDetails.ContentUserRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		middleware.AuthJWT(middleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			BlacklistChecker:    authService.IsTokenBlacklisted(db),
			AllowCookieFallback: true,
		}),
		middleware.RequireRoles(constants.RoleOwner, constants.RoleAdmin),
	)
	wartaRoute.WartaAdminRoutes(admin, db)
	routeDetails.ContentAdminRoutes(admin, db)
	routeDetails.CommunityAdminRoutes(admin, db)

	log.Println("[INFO] Semua route berhasil didaftarkan ✅")
}
