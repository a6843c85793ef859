// file: internals/features/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: announcements (pengumuman gereja, di luar warta)
   ========================================================= */

type AnnouncementModel struct {
	AnnouncementID      uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:announcement_id" json:"announcement_id"`
	AnnouncementTitle   string         `gorm:"type:varchar(200);not null;column:announcement_title" json:"announcement_title"`
	AnnouncementContent string         `gorm:"type:text;not null;column:announcement_content" json:"announcement_content"`
	AnnouncementDate    time.Time      `gorm:"type:date;not null;column:announcement_date" json:"announcement_date"`
	AnnouncementTags    pq.StringArray `gorm:"type:text[];column:announcement_tags" json:"announcement_tags"`

	AnnouncementIsPublished bool `gorm:"type:boolean;not null;default:false;column:announcement_is_published" json:"announcement_is_published"`

	AnnouncementCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:announcement_created_at" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:announcement_updated_at" json:"announcement_updated_at"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;index" json:"announcement_deleted_at,omitempty"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
