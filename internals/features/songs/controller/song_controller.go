// file: internals/features/songs/controller/song_controller.go
package controller

import (
	"errors"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "gerejaku_backend/internals/features/songs/dto"
	smodel "gerejaku_backend/internals/features/songs/model"
	helper "gerejaku_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

type SongController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSongController(db *gorm.DB) *SongController {
	return &SongController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ==============================
   SEARCH & GET (dipakai editor modul lagu)
============================== */

// GET /songs/search?q=kj+100&token=abc
// Substring match atas judul/nomor/kategori. `token` (opsional) digenapkan
// kembali di response supaya klien bisa membuang respons basi saat
// mengetik cepat (perbandingan request-token).
func (ctl *SongController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	token := strings.TrimSpace(c.Query("token"))
	if q == "" {
		return helper.Success(c, "OK", fiber.Map{"token": token, "songs": []dto.SongSummaryResponse{}})
	}

	like := "%" + q + "%"
	var rows []smodel.SongModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("song_title ILIKE ? OR song_number ILIKE ? OR song_category ILIKE ?", like, like, like).
		Order("song_category ASC, song_number ASC").
		Limit(30).
		Find(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mencari lagu")
	}

	out := make([]dto.SongSummaryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToSummary(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{"token": token, "songs": out})
}

// GET /songs/:id — detail + lirik ternormalisasi
func (ctl *SongController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID lagu tidak valid")
	}

	var m smodel.SongModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "song_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lagu tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil lagu")
	}
	return helper.Success(c, "OK", dto.ToResponse(&m))
}

/* ==============================
   CRUD admin
============================== */

// POST /songs
func (ctl *SongController) Create(c *fiber.Ctx) error {
	var req dto.CreateSongRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan lagu")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Lagu tersimpan", dto.ToResponse(m))
}

// PUT /songs/:id
func (ctl *SongController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID lagu tidak valid")
	}

	var req dto.UpdateSongRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m smodel.SongModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "song_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Lagu tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil lagu")
	}

	req.Apply(&m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan lagu")
	}
	return helper.Success(c, "Lagu diperbarui", dto.ToResponse(&m))
}

// DELETE /songs/:id (soft delete)
func (ctl *SongController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID lagu tidak valid")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&smodel.SongModel{}, "song_id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus lagu")
	}
	return helper.Success(c, "Lagu dihapus", nil)
}

// GET /songs?page=&per_page= — daftar admin dengan pagination
func (ctl *SongController) List(c *fiber.Ctx) error {
	p := helper.ParseFiberWith(c, "number", "asc", helper.AdminOpts)

	allowed := map[string]string{
		"number":     "song_number",
		"title":      "song_title",
		"category":   "song_category",
		"created_at": "song_created_at",
	}
	order, err := p.SafeOrderClause(allowed, "number")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter sort tidak valid")
	}

	tx := ctl.DB.WithContext(c.UserContext()).Model(&smodel.SongModel{})
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		tx = tx.Where("song_category = ?", cat)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung lagu")
	}

	var rows []smodel.SongModel
	if err := tx.Order(order).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar lagu")
	}

	out := make([]dto.SongSummaryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToSummary(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"songs": out,
		"meta":  helper.BuildMeta(total, p),
	})
}
