// file: internals/features/warta/bulletins/controller/warta_public_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	lyrics "gerejaku_backend/internals/features/songs/lyrics"
	dto "gerejaku_backend/internals/features/warta/bulletins/dto"
	wmodel "gerejaku_backend/internals/features/warta/bulletins/model"
	renderer "gerejaku_backend/internals/features/warta/renderer"
	helper "gerejaku_backend/internals/helpers"
)

/* ==============================
   Controller publik (jemaat)
============================== */

type WartaPublicController struct {
	DB *gorm.DB
}

func NewWartaPublicController(db *gorm.DB) *WartaPublicController {
	return &WartaPublicController{DB: db}
}

// GET /wartas — daftar warta terbit (proyeksi ringkas)
func (ctl *WartaPublicController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "date", "desc")

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&wmodel.WartaModel{}).
		Where("warta_is_published = TRUE")

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung warta")
	}

	var rows []wmodel.WartaModel
	if err := tx.Order("warta_date DESC").
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

// GET /wartas/:id/view?font_step=1
// Proyeksi baca: dokumen dirender dengan cache lirik segar per permintaan
// (warta terbit bersifat read-only, tidak ada sesi edit).
func (ctl *WartaPublicController) View(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID warta tidak valid")
	}

	var m wmodel.WartaModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&m, "warta_id = ? AND warta_is_published = TRUE", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Warta tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil warta")
	}

	res := lyrics.NewResolver(lyrics.DBFetch(ctl.DB))
	doc := renderer.Public(c.UserContext(), m.ToBulletin(), res, c.QueryInt("font_step"))
	return helper.Success(c, "OK", doc)
}
