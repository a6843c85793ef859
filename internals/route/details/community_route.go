// file: internals/route/details/community_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementController "gerejaku_backend/internals/features/announcements/controller"
	devotionalController "gerejaku_backend/internals/features/devotionals/controller"
	galleryController "gerejaku_backend/internals/features/galleries/controller"
	offeringController "gerejaku_backend/internals/features/offerings/controller"
	scheduleController "gerejaku_backend/internals/features/schedules/controller"
)

// CommunityPublicRoutes: konten jemaat tanpa login (group /api/public)
func CommunityPublicRoutes(r fiber.Router, db *gorm.DB) {
	announcement := announcementController.NewAnnouncementController(db)
	devotional := devotionalController.NewDevotionalController(db)
	schedule := scheduleController.NewScheduleController(db)
	gallery := galleryController.NewGalleryController(db)
	offering := offeringController.NewOfferingController(db)

	r.Get("/announcements", announcement.List(true))
	r.Get("/devotionals", devotional.List(true))
	r.Get("/devotionals/today", devotional.Today)
	r.Get("/schedules", schedule.List(true))
	r.Get("/gallery-albums", gallery.ListAlbums(true))
	r.Get("/gallery-albums/:slug/photos", gallery.GetAlbumPhotos)

	r.Post("/offerings", offering.Create)
	r.Post("/offerings/webhook", offering.Webhook)
	r.Get("/offerings/:orderId/status", offering.GetStatus)
}

// CommunityAdminRoutes: kelola konten jemaat (group /api/a)
func CommunityAdminRoutes(r fiber.Router, db *gorm.DB) {
	announcement := announcementController.NewAnnouncementController(db)
	devotional := devotionalController.NewDevotionalController(db)
	schedule := scheduleController.NewScheduleController(db)
	gallery := galleryController.NewGalleryController(db)
	offering := offeringController.NewOfferingController(db)

	r.Get("/announcements", announcement.List(false))
	r.Post("/announcements", announcement.Create)
	r.Put("/announcements/:id", announcement.Update)
	r.Delete("/announcements/:id", announcement.Delete)

	r.Get("/devotionals", devotional.List(false))
	r.Post("/devotionals", devotional.Create)
	r.Put("/devotionals/:id", devotional.Update)
	r.Delete("/devotionals/:id", devotional.Delete)

	r.Get("/schedules", schedule.List(false))
	r.Post("/schedules", schedule.Create)
	r.Put("/schedules/:id", schedule.Update)
	r.Delete("/schedules/:id", schedule.Delete)

	r.Get("/gallery-albums", gallery.ListAlbums(false))
	r.Post("/gallery-albums", gallery.CreateAlbum)
	r.Put("/gallery-albums/:id", gallery.UpdateAlbum)
	r.Delete("/gallery-albums/:id", gallery.DeleteAlbum)
	r.Post("/gallery-albums/:id/photos", gallery.UploadPhoto)
	r.Delete("/gallery-photos/:id", gallery.DeletePhoto)

	r.Get("/offerings", offering.List)
	r.Get("/offerings/summary", offering.Summary)
}
