// file: internals/route/details/content_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scriptureController "gerejaku_backend/internals/features/scripture/controller"
	songController "gerejaku_backend/internals/features/songs/controller"
)

// ContentAdminRoutes: kelola buku nyanyian (group /api/a)
func ContentAdminRoutes(r fiber.Router, db *gorm.DB) {
	song := songController.NewSongController(db)

	r.Post("/songs", song.Create)
	r.Put("/songs/:id", song.Update)
	r.Delete("/songs/:id", song.Delete)
	r.Get("/songs", song.List)
}

// ContentUserRoutes: pencarian lagu & Alkitab untuk penyusun warta (group /api/u)
func ContentUserRoutes(r fiber.Router, db *gorm.DB) {
	song := songController.NewSongController(db)
	scripture := scriptureController.NewScriptureController(db)

	r.Get("/songs/search", song.Search)
	r.Get("/songs/:id", song.GetByID)

	r.Get("/bible/books", scripture.ListBooks)
	r.Get("/bible/verses", scripture.GetVerses)
}
