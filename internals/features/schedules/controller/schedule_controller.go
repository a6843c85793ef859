// file: internals/features/schedules/controller/schedule_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/schedules/model"
	helper "gerejaku_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

var validateSchedule = validator.New()

type upsertScheduleRequest struct {
	ScheduleName     string  `json:"schedule_name" validate:"required,min=3,max=120"`
	ScheduleDay      string  `json:"schedule_day" validate:"omitempty,oneof=minggu senin selasa rabu kamis jumat sabtu"`
	ScheduleTime     string  `json:"schedule_time" validate:"required,len=5"` // "HH:MM"
	ScheduleLocation string  `json:"schedule_location" validate:"omitempty,max=200"`
	ScheduleNote     string  `json:"schedule_note"`
	ScheduleDate     *string `json:"schedule_date" validate:"omitempty,datetime=2006-01-02"`
	ScheduleIsActive *bool   `json:"schedule_is_active"`
}

func (r *upsertScheduleRequest) parsedDate() (*time.Time, error) {
	if r.ScheduleDate == nil || *r.ScheduleDate == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *r.ScheduleDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ✅ POST /api/a/schedules
func (ctrl *ScheduleController) Create(c *fiber.Ctx) error {
	var req upsertScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateSchedule.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	date, err := req.parsedDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}

	row := model.ScheduleModel{
		ScheduleName:     req.ScheduleName,
		ScheduleDay:      req.ScheduleDay,
		ScheduleTime:     req.ScheduleTime,
		ScheduleLocation: req.ScheduleLocation,
		ScheduleNote:     req.ScheduleNote,
		ScheduleDate:     date,
		ScheduleIsActive: true,
	}
	if req.ScheduleIsActive != nil {
		row.ScheduleIsActive = *req.ScheduleIsActive
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jadwal berhasil dibuat", row)
}

// ✅ PUT /api/a/schedules/:id
func (ctrl *ScheduleController) Update(c *fiber.Ctx) error {
	var row model.ScheduleModel
	if err := ctrl.DB.First(&row, "schedule_id = ?", c.Params("id")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}

	var req upsertScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validateSchedule.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	date, err := req.parsedDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}

	row.ScheduleName = req.ScheduleName
	row.ScheduleDay = req.ScheduleDay
	row.ScheduleTime = req.ScheduleTime
	row.ScheduleLocation = req.ScheduleLocation
	row.ScheduleNote = req.ScheduleNote
	row.ScheduleDate = date
	if req.ScheduleIsActive != nil {
		row.ScheduleIsActive = *req.ScheduleIsActive
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui jadwal")
	}
	return helper.Success(c, "Jadwal berhasil diperbarui", row)
}

// ✅ DELETE /api/a/schedules/:id
func (ctrl *ScheduleController) Delete(c *fiber.Ctx) error {
	res := ctrl.DB.Delete(&model.ScheduleModel{}, "schedule_id = ?", c.Params("id"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}
	return helper.Success(c, "Jadwal berhasil dihapus", nil)
}

// ✅ GET /api/a/schedules atau /api/public/schedules
// publicOnly: hanya jadwal aktif, urut hari + jam
func (ctrl *ScheduleController) List(publicOnly bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := ctrl.DB.Model(&model.ScheduleModel{})
		if publicOnly {
			q = q.Where("schedule_is_active = ?", true)
		}
		var rows []model.ScheduleModel
		if err := q.
			Order("schedule_date ASC NULLS FIRST").
			Order("schedule_day ASC").
			Order("schedule_time ASC").
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar jadwal")
		}
		return helper.Success(c, "Daftar jadwal berhasil diambil", rows)
	}
}
