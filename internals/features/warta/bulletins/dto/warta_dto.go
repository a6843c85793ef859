// file: internals/features/warta/bulletins/dto/warta_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	composer "gerejaku_backend/internals/features/warta/bulletins/composer"
	wmodel "gerejaku_backend/internals/features/warta/bulletins/model"
)

/* ==============================
   CREATE (POST /wartas)
============================== */

type CreateWartaRequest struct {
	WartaTitle    string    `json:"warta_title" validate:"required,max=200"`
	WartaDate     time.Time `json:"warta_date" validate:"required"`
	WartaWeekName string    `json:"warta_week_name" validate:"omitempty,max=120"`
}

func (r *CreateWartaRequest) ToModel() *wmodel.WartaModel {
	return &wmodel.WartaModel{
		WartaTitle:    strings.TrimSpace(r.WartaTitle),
		WartaDate:     r.WartaDate,
		WartaWeekName: strings.TrimSpace(r.WartaWeekName),
	}
}

/* ==============================
   UPDATE (PUT /wartas/:id) — ganti dokumen utuh
============================== */

type UpdateWartaRequest struct {
	WartaTitle    *string          `json:"warta_title" validate:"omitempty,max=200"`
	WartaDate     *time.Time       `json:"warta_date" validate:"omitempty"`
	WartaWeekName *string          `json:"warta_week_name" validate:"omitempty,max=120"`
	WartaModules  *json.RawMessage `json:"warta_modules" validate:"omitempty"`
	WartaIsPublished *bool         `json:"warta_is_published" validate:"omitempty"`
}

// Apply menerapkan request ke dokumen lalu menulis balik ke model.
func (r *UpdateWartaRequest) Apply(m *wmodel.WartaModel) error {
	b := m.ToBulletin()
	if r.WartaTitle != nil {
		b.Title = strings.TrimSpace(*r.WartaTitle)
	}
	if r.WartaDate != nil {
		b.Date = *r.WartaDate
	}
	if r.WartaWeekName != nil {
		b.WeekName = strings.TrimSpace(*r.WartaWeekName)
	}
	if r.WartaIsPublished != nil {
		b.Published = *r.WartaIsPublished
	}
	if r.WartaModules != nil && len(*r.WartaModules) > 0 {
		var modules []composer.Module
		if err := json.Unmarshal(*r.WartaModules, &modules); err != nil {
			return err
		}
		b.Modules = modules
	}
	return m.ApplyBulletin(b)
}

/* ==============================
   RESPONSE
============================== */

// WartaSummaryResponse: proyeksi daftar (tanpa isian modul).
type WartaSummaryResponse struct {
	WartaID          uuid.UUID `json:"warta_id"`
	WartaTitle       string    `json:"warta_title"`
	WartaDate        time.Time `json:"warta_date"`
	WartaWeekName    string    `json:"warta_week_name"`
	WartaIsPublished bool      `json:"warta_is_published"`
	WartaModuleCount int       `json:"warta_module_count"`
	WartaUpdatedAt   time.Time `json:"warta_updated_at"`
}

func ToSummary(m *wmodel.WartaModel) WartaSummaryResponse {
	b := m.ToBulletin()
	return WartaSummaryResponse{
		WartaID:          m.WartaID,
		WartaTitle:       m.WartaTitle,
		WartaDate:        m.WartaDate,
		WartaWeekName:    m.WartaWeekName,
		WartaIsPublished: m.WartaIsPublished,
		WartaModuleCount: len(b.Modules),
		WartaUpdatedAt:   m.WartaUpdatedAt,
	}
}

// WartaResponse: dokumen penuh.
type WartaResponse struct {
	WartaID          uuid.UUID         `json:"warta_id"`
	WartaTitle       string            `json:"warta_title"`
	WartaDate        time.Time         `json:"warta_date"`
	WartaWeekName    string            `json:"warta_week_name"`
	WartaIsPublished bool              `json:"warta_is_published"`
	WartaModules     []composer.Module `json:"warta_modules"`
	WartaUpdatedAt   time.Time         `json:"warta_updated_at"`
}

func ToResponse(m *wmodel.WartaModel) WartaResponse {
	b := m.ToBulletin()
	return WartaResponse{
		WartaID:          m.WartaID,
		WartaTitle:       m.WartaTitle,
		WartaDate:        m.WartaDate,
		WartaWeekName:    m.WartaWeekName,
		WartaIsPublished: m.WartaIsPublished,
		WartaModules:     b.Modules,
		WartaUpdatedAt:   m.WartaUpdatedAt,
	}
}
