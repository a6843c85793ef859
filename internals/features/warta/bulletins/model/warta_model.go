// file: internals/features/warta/bulletins/model/warta_model.go
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	composer "gerejaku_backend/internals/features/warta/bulletins/composer"
)

/* =========================================================
   MODEL: wartas (dokumen warta ibadah)
   =========================================================

   Modul disimpan utuh sebagai JSONB (dokumen diganti seluruhnya
   saat simpan — tidak ada patch per field).
*/

type WartaModel struct {
	WartaID       uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:warta_id" json:"warta_id"`
	WartaTitle    string         `gorm:"type:varchar(200);not null;column:warta_title" json:"warta_title"`
	WartaDate     time.Time      `gorm:"type:date;not null;column:warta_date" json:"warta_date"`
	WartaWeekName string         `gorm:"type:varchar(120);not null;default:'';column:warta_week_name" json:"warta_week_name"`
	WartaModules  datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:warta_modules" json:"warta_modules"`

	WartaIsPublished bool `gorm:"type:boolean;not null;default:false;column:warta_is_published" json:"warta_is_published"`

	WartaCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:warta_created_at" json:"warta_created_at"`
	WartaUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:warta_updated_at" json:"warta_updated_at"`
	WartaDeletedAt gorm.DeletedAt `gorm:"column:warta_deleted_at;index" json:"warta_deleted_at,omitempty"`
}

func (WartaModel) TableName() string { return "wartas" }

// ToBulletin mendekode baris tersimpan menjadi dokumen composer.
// Modul yang tak bisa didekode menjadi varian legacy, bukan error fatal.
func (m *WartaModel) ToBulletin() composer.Bulletin {
	var modules []composer.Module
	if len(m.WartaModules) > 0 {
		// error diabaikan: elemen rusak sudah ditoleransi per-modul
		_ = json.Unmarshal(m.WartaModules, &modules)
	}
	if modules == nil {
		modules = []composer.Module{}
	}
	return composer.Bulletin{
		ID:        m.WartaID,
		Title:     m.WartaTitle,
		Date:      m.WartaDate,
		WeekName:  m.WartaWeekName,
		Modules:   modules,
		Published: m.WartaIsPublished,
	}
}

// ApplyBulletin menulis balik dokumen composer ke baris (simpan utuh).
// Field order dinomori ulang mengikuti indeks array.
func (m *WartaModel) ApplyBulletin(b composer.Bulletin) error {
	raw, err := json.Marshal(composer.NormalizeOrder(b.Modules))
	if err != nil {
		return err
	}
	m.WartaTitle = b.Title
	m.WartaDate = b.Date
	m.WartaWeekName = b.WeekName
	m.WartaModules = datatypes.JSON(raw)
	m.WartaIsPublished = b.Published
	return nil
}
