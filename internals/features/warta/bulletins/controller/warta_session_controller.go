// file: internals/features/warta/bulletins/controller/warta_session_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	composer "gerejaku_backend/internals/features/warta/bulletins/composer"
	service "gerejaku_backend/internals/features/warta/bulletins/service"
	renderer "gerejaku_backend/internals/features/warta/renderer"
	helper "gerejaku_backend/internals/helpers"
)

/* ==============================
   Controller sesi penyusunan warta
============================== */

type WartaSessionController struct {
	DB        *gorm.DB
	Sessions  *service.SessionRegistry
	Validator *validator.Validate
}

func NewWartaSessionController(db *gorm.DB, reg *service.SessionRegistry) *WartaSessionController {
	return &WartaSessionController{
		DB:        db,
		Sessions:  reg,
		Validator: validator.New(),
	}
}

func (ctl *WartaSessionController) session(c *fiber.Ctx) (*service.EditSession, error) {
	sid, err := uuid.Parse(strings.TrimSpace(c.Params("session_id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}
	s, err := ctl.Sessions.Get(sid)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan (sudah ditutup?)")
	}
	return s, nil
}

// POST /wartas/:id/session — buka sesi edit
func (ctl *WartaSessionController) Open(c *fiber.Ctx) error {
	wid, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID warta tidak valid")
	}

	s, err := ctl.Sessions.Open(c.UserContext(), ctl.DB, wid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Warta tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuka sesi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi dibuka", s.Snapshot())
}

// GET /warta-sessions/:session_id — potret sesi
func (ctl *WartaSessionController) Get(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", s.Snapshot())
}

// DELETE /warta-sessions/:session_id — tutup sesi (draft yang belum
// disimpan hangus)
func (ctl *WartaSessionController) Close(c *fiber.Ctx) error {
	sid, err := uuid.Parse(strings.TrimSpace(c.Params("session_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sesi tidak valid")
	}
	ctl.Sessions.Close(sid)
	return helper.Success(c, "Sesi ditutup", nil)
}

/* ============ Operasi daftar modul ============ */

// POST /warta-sessions/:session_id/modules
func (ctl *WartaSessionController) AddModule(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body struct {
		Type composer.ModuleType `json:"type"`
	}
	if err := c.BodyParser(&body); err != nil || !body.Type.Valid() {
		return helper.Error(c, fiber.StatusBadRequest, "Tipe modul tidak dikenal")
	}
	b := s.AddModule(body.Type)
	return helper.Success(c, "Modul ditambahkan", fiber.Map{"modules": b.Modules})
}

// DELETE /warta-sessions/:session_id/modules/:module_id
func (ctl *WartaSessionController) RemoveModule(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	mid, err := uuid.Parse(strings.TrimSpace(c.Params("module_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID modul tidak valid")
	}
	b := s.RemoveModule(mid)
	return helper.Success(c, "Modul dihapus", fiber.Map{"modules": b.Modules})
}

// POST /warta-sessions/:session_id/modules/reorder  {from, to}
// Dipicu akhir gesture drag; gesture layer murni urusan klien.
func (ctl *WartaSessionController) ReorderModules(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	b := s.MoveModule(body.From, body.To)
	return helper.Success(c, "Urutan diperbarui", fiber.Map{"modules": b.Modules})
}

// PUT /warta-sessions/:session_id/modules/:module_id/data — ganti payload penuh
func (ctl *WartaSessionController) UpdateModuleData(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	mid, err := uuid.Parse(strings.TrimSpace(c.Params("module_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID modul tidak valid")
	}

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	b := s.UpdateModuleData(mid, body.Data)
	return helper.Success(c, "Modul diperbarui", fiber.Map{"modules": b.Modules})
}

// POST /warta-sessions/:session_id/modules/:module_id/collapse
func (ctl *WartaSessionController) ToggleCollapsed(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	mid, err := uuid.Parse(strings.TrimSpace(c.Params("module_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID modul tidak valid")
	}
	return helper.Success(c, "OK", fiber.Map{"collapsed": s.ToggleCollapsed(mid)})
}

/* ============ Operasi editor bertipe ============ */

// POST /warta-sessions/:session_id/modules/:module_id/song
// Body = snapshot lagu terpilih dari hasil pencarian.
func (ctl *WartaSessionController) SelectSong(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	mid, err := uuid.Parse(strings.TrimSpace(c.Params("module_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID modul tidak valid")
	}

	var body struct {
		SongID   uuid.UUID `json:"song_id" validate:"required"`
		Title    string    `json:"title" validate:"required"`
		Number   string    `json:"number"`
		Category string    `json:"category"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	b := s.SelectSong(mid, composer.SongRef{
		ID:       body.SongID,
		Title:    body.Title,
		Number:   body.Number,
		Category: body.Category,
	})
	return helper.Success(c, "Lagu dipilih", fiber.Map{"modules": b.Modules})
}

// POST /warta-sessions/:session_id/modules/:module_id/liturgy-template
func (ctl *WartaSessionController) LoadLiturgyTemplate(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	mid, err := uuid.Parse(strings.TrimSpace(c.Params("module_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID modul tidak valid")
	}
	b := s.LoadLiturgyTemplate(mid)
	return helper.Success(c, "Template tata ibadah dimuat", fiber.Map{"modules": b.Modules})
}

// POST /warta-sessions/:session_id/modules/:module_id/roster-defaults
func (ctl *WartaSessionController) InitRosterDefaults(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	mid, err := uuid.Parse(strings.TrimSpace(c.Params("module_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID modul tidak valid")
	}
	b := s.InitRosterDefaults(mid)
	return helper.Success(c, "Peran pelayan baku dimuat", fiber.Map{"modules": b.Modules})
}

// PATCH /warta-sessions/:session_id/meta
func (ctl *WartaSessionController) SetMeta(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body struct {
		Title    string     `json:"title"`
		WeekName string     `json:"week_name"`
		Date     *time.Time `json:"date"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	b := s.SetMeta(strings.TrimSpace(body.Title), strings.TrimSpace(body.WeekName), body.Date)
	return helper.Success(c, "Meta diperbarui", fiber.Map{
		"title": b.Title, "week_name": b.WeekName, "date": b.Date,
	})
}

/* ============ Save & render ============ */

// POST /warta-sessions/:session_id/save — persist dokumen utuh
func (ctl *WartaSessionController) Save(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := s.Save(c.UserContext(), ctl.DB); err != nil {
		if errors.Is(err, service.ErrSaveInFlight) {
			return helper.Error(c, fiber.StatusConflict, "Simpan sedang berjalan")
		}
		// satu-satunya galat yang HARUS tampil ke user sebagai alert
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan warta — coba lagi")
	}
	return helper.Success(c, "Warta tersimpan", s.Snapshot())
}

// GET /warta-sessions/:session_id/render/preview?zoom=0.8
func (ctl *WartaSessionController) RenderPreview(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	zoom := 1.0
	if z := c.QueryFloat("zoom"); z > 0 {
		zoom = z
	}
	doc := renderer.Preview(c.UserContext(), s.Bulletin(), s.Lyrics(), zoom)
	return helper.Success(c, "OK", doc)
}

// GET /warta-sessions/:session_id/render/print
func (ctl *WartaSessionController) RenderPrint(c *fiber.Ctx) error {
	s, err := ctl.session(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	doc := renderer.Print(c.UserContext(), s.Bulletin(), s.Lyrics())
	return helper.Success(c, "OK", doc)
}
