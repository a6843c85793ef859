// file: internals/features/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: service_schedules (jadwal ibadah rutin & khusus)
   ========================================================= */

type ScheduleModel struct {
	ScheduleID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:schedule_id" json:"schedule_id"`
	ScheduleName     string    `gorm:"type:varchar(120);not null;column:schedule_name" json:"schedule_name"` // mis. "Ibadah Minggu Pagi"
	ScheduleDay      string    `gorm:"type:varchar(12);not null;default:'';column:schedule_day" json:"schedule_day"` // "minggu".."sabtu"; kosong = insidental
	ScheduleTime     string    `gorm:"type:varchar(5);not null;column:schedule_time" json:"schedule_time"`   // "HH:MM"
	ScheduleLocation string    `gorm:"type:varchar(200);not null;default:'';column:schedule_location" json:"schedule_location"`
	ScheduleNote     string    `gorm:"type:text;not null;default:'';column:schedule_note" json:"schedule_note"`
	ScheduleDate     *time.Time `gorm:"type:date;column:schedule_date" json:"schedule_date,omitempty"` // ibadah khusus satu kali

	ScheduleIsActive bool `gorm:"type:boolean;not null;default:true;column:schedule_is_active" json:"schedule_is_active"`

	ScheduleCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:schedule_created_at" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:schedule_updated_at" json:"schedule_updated_at"`
	ScheduleDeletedAt gorm.DeletedAt `gorm:"column:schedule_deleted_at;index" json:"schedule_deleted_at,omitempty"`
}

func (ScheduleModel) TableName() string { return "service_schedules" }
