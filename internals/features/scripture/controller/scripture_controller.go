// file: internals/features/scripture/controller/scripture_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "gerejaku_backend/internals/features/scripture/service"
	helper "gerejaku_backend/internals/helpers"
)

type ScriptureController struct {
	DB *gorm.DB
}

func NewScriptureController(db *gorm.DB) *ScriptureController {
	return &ScriptureController{DB: db}
}

// GET /scripture/books
func (ctl *ScriptureController) ListBooks(c *fiber.Ctx) error {
	books, err := service.ListBooks(c.UserContext(), ctl.DB)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kitab")
	}
	return helper.Success(c, "OK", books)
}

// GET /scripture/verses?book_id=yoh&chapter=3&verse_start=16&verse_end=17&translation=TB
// Mengembalikan ayat per nomor + teks gabungan siap simpan ke modul VERSE.
func (ctl *ScriptureController) GetVerses(c *fiber.Ctx) error {
	bookID := strings.TrimSpace(c.Query("book_id"))
	chapter := c.QueryInt("chapter")
	if bookID == "" || chapter < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "book_id dan chapter wajib diisi")
	}

	verses, err := service.GetVerses(
		c.UserContext(), ctl.DB,
		bookID, chapter,
		c.QueryInt("verse_start"), c.QueryInt("verse_end"),
		strings.TrimSpace(c.Query("translation")),
	)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil ayat")
	}
	if len(verses) == 0 {
		// bukan error blokir: editor menampilkan "ayat tidak ditemukan"
		return helper.Success(c, "Ayat tidak ditemukan", fiber.Map{
			"verses":  []service.Verse{},
			"content": "",
		})
	}

	return helper.Success(c, "OK", fiber.Map{
		"verses":  verses,
		"content": service.ConcatVerses(verses),
	})
}
