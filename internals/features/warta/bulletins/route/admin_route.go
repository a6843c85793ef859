package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wartaCtl "gerejaku_backend/internals/features/warta/bulletins/controller"
	service "gerejaku_backend/internals/features/warta/bulletins/service"
)

// Rute ADMIN (harus sudah di-mount di group admin dengan middleware auth)
func WartaAdminRoutes(r fiber.Router, db *gorm.DB) {
	sessions := service.NewSessionRegistry()

	admin := wartaCtl.NewWartaAdminController(db)
	sess := wartaCtl.NewWartaSessionController(db, sessions)

	// ================== CRUD WARTA ==================
	w := r.Group("/wartas")
	w.Post("/", admin.Create)
	w.Get("/list", admin.List)
	w.Get("/:id", admin.Get)
	w.Put("/:id", admin.Update)
	w.Patch("/:id/publish", admin.SetPublished)
	w.Delete("/:id", admin.Delete)

	// ================== SESI PENYUSUNAN ==================
	w.Post("/:id/session", sess.Open)

	ws := r.Group("/warta-sessions")
	ws.Get("/:session_id", sess.Get)
	ws.Delete("/:session_id", sess.Close)
	ws.Post("/:session_id/save", sess.Save)
	ws.Patch("/:session_id/meta", sess.SetMeta)

	ws.Post("/:session_id/modules", sess.AddModule)
	ws.Post("/:session_id/modules/reorder", sess.ReorderModules)
	ws.Delete("/:session_id/modules/:module_id", sess.RemoveModule)
	ws.Put("/:session_id/modules/:module_id/data", sess.UpdateModuleData)
	ws.Post("/:session_id/modules/:module_id/collapse", sess.ToggleCollapsed)

	// editor bertipe
	ws.Post("/:session_id/modules/:module_id/song", sess.SelectSong)
	ws.Post("/:session_id/modules/:module_id/liturgy-template", sess.LoadLiturgyTemplate)
	ws.Post("/:session_id/modules/:module_id/roster-defaults", sess.InitRosterDefaults)

	// render
	ws.Get("/:session_id/render/preview", sess.RenderPreview)
	ws.Get("/:session_id/render/print", sess.RenderPrint)
}
