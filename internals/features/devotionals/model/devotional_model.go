// file: internals/features/devotionals/model/devotional_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: devotionals (renungan harian)
   =========================================================

   Baris bisa lahir dari input admin maupun hasil ingest RSS
   (pipeline ingest di luar repo ini; kolom source menyimpan asalnya).
*/

type DevotionalModel struct {
	DevotionalID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:devotional_id" json:"devotional_id"`
	DevotionalTitle   string    `gorm:"type:varchar(200);not null;column:devotional_title" json:"devotional_title"`
	DevotionalContent string    `gorm:"type:text;not null;column:devotional_content" json:"devotional_content"`
	DevotionalVerse   string    `gorm:"type:varchar(120);not null;default:'';column:devotional_verse" json:"devotional_verse"` // referensi ayat, mis. "Mzm 23:1"
	DevotionalAuthor  string    `gorm:"type:varchar(120);not null;default:'';column:devotional_author" json:"devotional_author"`
	DevotionalDate    time.Time `gorm:"type:date;not null;column:devotional_date" json:"devotional_date"`
	DevotionalSource  string    `gorm:"type:text;not null;default:'';column:devotional_source" json:"devotional_source"` // URL asal bila dari RSS

	DevotionalIsPublished bool `gorm:"type:boolean;not null;default:true;column:devotional_is_published" json:"devotional_is_published"`

	DevotionalCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:devotional_created_at" json:"devotional_created_at"`
	DevotionalUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:devotional_updated_at" json:"devotional_updated_at"`
	DevotionalDeletedAt gorm.DeletedAt `gorm:"column:devotional_deleted_at;index" json:"devotional_deleted_at,omitempty"`
}

func (DevotionalModel) TableName() string { return "devotionals" }
