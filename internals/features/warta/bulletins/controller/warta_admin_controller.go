// file: internals/features/warta/bulletins/controller/warta_admin_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "gerejaku_backend/internals/features/warta/bulletins/dto"
	wmodel "gerejaku_backend/internals/features/warta/bulletins/model"
	helper "gerejaku_backend/internals/helpers"
)

/* ==============================
   Controller CRUD warta (admin)
============================== */

type WartaAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewWartaAdminController(db *gorm.DB) *WartaAdminController {
	return &WartaAdminController{
		DB:        db,
		Validator: validator.New(),
	}
}

func parseWartaID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID warta tidak valid")
	}
	return id, nil
}

// POST /wartas — buat warta kosong
func (ctl *WartaAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateWartaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat warta")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Warta dibuat", dto.ToResponse(m))
}

// GET /wartas/list — proyeksi ringkas dengan pagination
func (ctl *WartaAdminController) List(c *fiber.Ctx) error {
	p := helper.ParseFiberWith(c, "date", "desc", helper.AdminOpts)

	allowed := map[string]string{
		"date":       "warta_date",
		"title":      "warta_title",
		"created_at": "warta_created_at",
	}
	order, err := p.SafeOrderClause(allowed, "date")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&wmodel.WartaModel{})
	if pub := strings.TrimSpace(c.Query("published")); pub != "" {
		tx = tx.Where("warta_is_published = ?", strings.EqualFold(pub, "true") || pub == "1")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung warta")
	}

	var rows []wmodel.WartaModel
	if err := tx.Order(order).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar warta")
	}

	out := make([]dto.WartaSummaryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToSummary(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"wartas": out,
		"meta":   helper.BuildMeta(total, p),
	})
}

// GET /wartas/:id — dokumen penuh
func (ctl *WartaAdminController) Get(c *fiber.Ctx) error {
	id, err := parseWartaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m wmodel.WartaModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "warta_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Warta tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil warta")
	}
	return helper.Success(c, "OK", dto.ToResponse(&m))
}

// PUT /wartas/:id — ganti dokumen utuh (atomic whole-document replace)
func (ctl *WartaAdminController) Update(c *fiber.Ctx) error {
	id, err := parseWartaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateWartaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m wmodel.WartaModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "warta_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Warta tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil warta")
	}

	if err := req.Apply(&m); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Bentuk modul tidak valid")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan warta")
	}
	return helper.Success(c, "Warta diperbarui", dto.ToResponse(&m))
}

// PATCH /wartas/:id/publish — toggle terbit/draft
func (ctl *WartaAdminController) SetPublished(c *fiber.Ctx) error {
	id, err := parseWartaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body struct {
		Published bool `json:"published"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Model(&wmodel.WartaModel{}).
		Where("warta_id = ?", id).
		Update("warta_is_published", body.Published)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah status terbit")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Warta tidak ditemukan")
	}
	msg := "Warta kembali jadi draft"
	if body.Published {
		msg = "Warta diterbitkan"
	}
	return helper.Success(c, msg, fiber.Map{"warta_id": id, "published": body.Published})
}

// DELETE /wartas/:id (soft delete)
func (ctl *WartaAdminController) Delete(c *fiber.Ctx) error {
	id, err := parseWartaID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&wmodel.WartaModel{}, "warta_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus warta")
	}
	return helper.Success(c, "Warta dihapus", nil)
}
