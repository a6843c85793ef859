// file: internals/features/devotionals/controller/devotional_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dmodel "gerejaku_backend/internals/features/devotionals/model"
	helper "gerejaku_backend/internals/helpers"
)

type DevotionalController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDevotionalController(db *gorm.DB) *DevotionalController {
	return &DevotionalController{DB: db, Validator: validator.New()}
}

type upsertDevotionalRequest struct {
	DevotionalTitle   string    `json:"devotional_title" validate:"required,max=200"`
	DevotionalContent string    `json:"devotional_content" validate:"required"`
	DevotionalVerse   string    `json:"devotional_verse" validate:"omitempty,max=120"`
	DevotionalAuthor  string    `json:"devotional_author" validate:"omitempty,max=120"`
	DevotionalDate    time.Time `json:"devotional_date" validate:"required"`
	DevotionalSource  string    `json:"devotional_source" validate:"omitempty,url"`
}

// POST /devotionals
func (ctl *DevotionalController) Create(c *fiber.Ctx) error {
	var req upsertDevotionalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := &dmodel.DevotionalModel{
		DevotionalTitle:       strings.TrimSpace(req.DevotionalTitle),
		DevotionalContent:     strings.TrimSpace(req.DevotionalContent),
		DevotionalVerse:       strings.TrimSpace(req.DevotionalVerse),
		DevotionalAuthor:      strings.TrimSpace(req.DevotionalAuthor),
		DevotionalDate:        req.DevotionalDate,
		DevotionalSource:      strings.TrimSpace(req.DevotionalSource),
		DevotionalIsPublished: true,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan renungan")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Renungan tersimpan", m)
}

// PUT /devotionals/:id
func (ctl *DevotionalController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID renungan tidak valid")
	}

	var req upsertDevotionalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m dmodel.DevotionalModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "devotional_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Renungan tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil renungan")
	}

	m.DevotionalTitle = strings.TrimSpace(req.DevotionalTitle)
	m.DevotionalContent = strings.TrimSpace(req.DevotionalContent)
	m.DevotionalVerse = strings.TrimSpace(req.DevotionalVerse)
	m.DevotionalAuthor = strings.TrimSpace(req.DevotionalAuthor)
	m.DevotionalDate = req.DevotionalDate
	m.DevotionalSource = strings.TrimSpace(req.DevotionalSource)

	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan renungan")
	}
	return helper.Success(c, "Renungan diperbarui", m)
}

// DELETE /devotionals/:id
func (ctl *DevotionalController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID renungan tidak valid")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&dmodel.DevotionalModel{}, "devotional_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus renungan")
	}
	return helper.Success(c, "Renungan dihapus", nil)
}

// GET /devotionals/list
func (ctl *DevotionalController) List(publicOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := helper.ParseFiber(c, "date", "desc")

		tx := ctl.DB.WithContext(c.UserContext()).Model(&dmodel.DevotionalModel{})
		if publicOnly {
			tx = tx.Where("devotional_is_published = TRUE")
		}

		var total int64
		if err := tx.Count(&total).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung renungan")
		}

		var rows []dmodel.DevotionalModel
		if err := tx.Order("devotional_date DESC").
			Limit(p.Limit()).Offset(p.Offset()).
			Find(&rows).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil renungan")
		}
		return helper.Success(c, "OK", fiber.Map{
			"devotionals": rows,
			"meta":        helper.BuildMeta(total, p),
		})
	}
}

// GET /devotionals/today — renungan untuk hari ini (publik)
func (ctl *DevotionalController) Today(c *fiber.Ctx) error {
	var m dmodel.DevotionalModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("devotional_is_published = TRUE AND devotional_date <= CURRENT_DATE").
		Order("devotional_date DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Belum ada renungan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil renungan")
	}
	return helper.Success(c, "OK", m)
}
