// file: internals/features/galleries/controller/gallery_controller.go
package controller

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/galleries/model"
	helper "gerejaku_backend/internals/helpers"
)

type GalleryController struct {
	DB *gorm.DB
}

func NewGalleryController(db *gorm.DB) *GalleryController {
	return &GalleryController{DB: db}
}

var validateGallery = validator.New()

// Folder penyimpanan foto. Di-serve statis lewat app.Static("/uploads", "./uploads").
const photoDir = "./uploads/galleries"

type upsertAlbumRequest struct {
	GalleryAlbumTitle    string `json:"gallery_album_title" validate:"required,min=3,max=150"`
	GalleryAlbumDesc     string `json:"gallery_album_desc"`
	GalleryAlbumIsPublic *bool  `json:"gallery_album_is_public"`
}

// ✅ POST /api/a/gallery-albums
func (ctrl *GalleryController) CreateAlbum(c *fiber.Ctx) error {
	var req upsertAlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateGallery.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:            "gallery_albums",
		SlugColumn:       "gallery_album_slug",
		SoftDeleteColumn: "gallery_album_deleted_at",
	}, req.GalleryAlbumTitle)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug album")
	}

	row := model.GalleryAlbumModel{
		GalleryAlbumTitle:    req.GalleryAlbumTitle,
		GalleryAlbumSlug:     slug,
		GalleryAlbumDesc:     req.GalleryAlbumDesc,
		GalleryAlbumIsPublic: true,
	}
	if req.GalleryAlbumIsPublic != nil {
		row.GalleryAlbumIsPublic = *req.GalleryAlbumIsPublic
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan album")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Album berhasil dibuat", row)
}

// ✅ PUT /api/a/gallery-albums/:id
func (ctrl *GalleryController) UpdateAlbum(c *fiber.Ctx) error {
	var row model.GalleryAlbumModel
	if err := ctrl.DB.First(&row, "gallery_album_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Album tidak ditemukan")
	}

	var req upsertAlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateGallery.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row.GalleryAlbumTitle = req.GalleryAlbumTitle
	row.GalleryAlbumDesc = req.GalleryAlbumDesc
	if req.GalleryAlbumIsPublic != nil {
		row.GalleryAlbumIsPublic = *req.GalleryAlbumIsPublic
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui album")
	}
	return helper.Success(c, "Album berhasil diperbarui", row)
}

// ✅ DELETE /api/a/gallery-albums/:id (foto ikut terhapus)
func (ctrl *GalleryController) DeleteAlbum(c *fiber.Ctx) error {
	albumID := c.Params("id")
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.GalleryPhotoModel{}, "gallery_photo_album_id = ?", albumID).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.GalleryAlbumModel{}, "gallery_album_id = ?", albumID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusNotFound, "Album tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus album")
	}
	return helper.Success(c, "Album berhasil dihapus", nil)
}

// ✅ GET /api/a/gallery-albums atau /api/public/gallery-albums
func (ctrl *GalleryController) ListAlbums(publicOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := ctrl.DB.Model(&model.GalleryAlbumModel{})
		if publicOnly {
			q = q.Where("gallery_album_is_public = ?", true)
		}
		var rows []model.GalleryAlbumModel
		if err := q.Order("gallery_album_created_at DESC").Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar album")
		}
		return helper.Success(c, "Daftar album berhasil diambil", rows)
	}
}

// ✅ GET /api/public/gallery-albums/:slug/photos
func (ctrl *GalleryController) GetAlbumPhotos(c *fiber.Ctx) error {
	var album model.GalleryAlbumModel
	if err := ctrl.DB.
		Where("gallery_album_slug = ? AND gallery_album_is_public = ?", c.Params("slug"), true).
		First(&album).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Album tidak ditemukan")
	}

	var photos []model.GalleryPhotoModel
	if err := ctrl.DB.
		Where("gallery_photo_album_id = ?", album.GalleryAlbumID).
		Order("gallery_photo_created_at ASC").
		Find(&photos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil foto album")
	}

	return helper.Success(c, "Foto album berhasil diambil", fiber.Map{
		"album":  album,
		"photos": photos,
	})
}

// ✅ POST /api/a/gallery-albums/:id/photos (multipart, field "photo")
// Gambar dikonversi ke WebP sebelum disimpan.
func (ctrl *GalleryController) UploadPhoto(c *fiber.Ctx) error {
	var album model.GalleryAlbumModel
	if err := ctrl.DB.First(&album, "gallery_album_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Album tidak ditemukan")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File foto wajib diunggah (field: photo)")
	}

	webpBytes, err := helper.ConvertToWebP(fh, 1600)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format gambar tidak didukung")
	}

	rel := helper.GenerateUniqueFilename("galleries", fh.Filename)
	name := filepath.Base(rel)
	name = strings.TrimSuffix(name, filepath.Ext(name)) + ".webp"
	dst := filepath.Join(photoDir, name)
	if err := os.MkdirAll(photoDir, 0o755); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyiapkan folder upload")
	}
	if err := os.WriteFile(dst, webpBytes, 0o644); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan file foto")
	}

	row := model.GalleryPhotoModel{
		GalleryPhotoAlbumID: album.GalleryAlbumID,
		GalleryPhotoURL:     "/uploads/galleries/" + filepath.Base(dst),
		GalleryPhotoCaption: strings.TrimSpace(c.FormValue("caption")),
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data foto")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Foto berhasil diunggah", row)
}

// ✅ DELETE /api/a/gallery-photos/:id
func (ctrl *GalleryController) DeletePhoto(c *fiber.Ctx) error {
	var row model.GalleryPhotoModel
	if err := ctrl.DB.First(&row, "gallery_photo_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
	}
	if err := ctrl.DB.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus foto")
	}
	// best effort: hapus file fisik
	_ = os.Remove(filepath.Join(".", row.GalleryPhotoURL))
	return helper.Success(c, "Foto berhasil dihapus", nil)
}
