// file: internals/features/announcements/controller/announcement_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "gerejaku_backend/internals/features/announcements/dto"
	amodel "gerejaku_backend/internals/features/announcements/model"
	helper "gerejaku_backend/internals/helpers"
)

type AnnouncementController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db, Validator: validator.New()}
}

// POST /announcements
func (ctl *AnnouncementController) Create(c *fiber.Ctx) error {
	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pengumuman")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengumuman tersimpan", m)
}

// PUT /announcements/:id
func (ctl *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengumuman tidak valid")
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m amodel.AnnouncementModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "announcement_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pengumuman")
	}
	return helper.Success(c, "Pengumuman diperbarui", m)
}

// DELETE /announcements/:id
func (ctl *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengumuman tidak valid")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&amodel.AnnouncementModel{}, "announcement_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	return helper.Success(c, "Pengumuman dihapus", nil)
}

// GET /announcements/list — admin (semua) / publik (published saja)
func (ctl *AnnouncementController) List(publicOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := helper.ParseFiber(c, "date", "desc")

		tx := ctl.DB.WithContext(c.UserContext()).Model(&amodel.AnnouncementModel{})
		if publicOnly {
			tx = tx.Where("announcement_is_published = TRUE")
		}
		if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
			tx = tx.Where("? = ANY(announcement_tags)", tag)
		}

		var total int64
		if err := tx.Count(&total).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung pengumuman")
		}

		var rows []amodel.AnnouncementModel
		if err := tx.Order("announcement_date DESC").
			Limit(p.Limit()).Offset(p.Offset()).
			Find(&rows).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
		}
		return helper.Success(c, "OK", fiber.Map{
			"announcements": rows,
			"meta":          helper.BuildMeta(total, p),
		})
	}
}
