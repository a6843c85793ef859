package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wartaCtl "gerejaku_backend/internals/features/warta/bulletins/controller"
)

// Rute PUBLIK (tanpa auth)
func WartaPublicRoutes(r fiber.Router, db *gorm.DB) {
	pub := wartaCtl.NewWartaPublicController(db)

	w := r.Group("/wartas")
	w.Get("/", pub.List)
	w.Get("/:id/view", pub.View)
}
