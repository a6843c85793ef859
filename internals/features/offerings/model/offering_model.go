// file: internals/features/offerings/model/offering_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: offerings (persembahan online via Midtrans Snap)
   ========================================================= */

type Offering struct {
	OfferingID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:offering_id" json:"offering_id"`
	OfferingOrderID string    `gorm:"type:varchar(64);not null;uniqueIndex;column:offering_order_id" json:"offering_order_id"`
	OfferingUserID  *uuid.UUID `gorm:"type:uuid;index;column:offering_user_id" json:"offering_user_id,omitempty"` // null = persembahan anonim

	OfferingAmount   int    `gorm:"type:integer;not null;column:offering_amount" json:"offering_amount"`
	OfferingCategory string `gorm:"type:varchar(40);not null;default:'umum';column:offering_category" json:"offering_category"` // umum | pembangunan | diakonia | misi
	OfferingMessage  string `gorm:"type:text;not null;default:'';column:offering_message" json:"offering_message"`

	OfferingStatus string     `gorm:"type:varchar(20);not null;default:'pending';column:offering_status" json:"offering_status"` // pending | paid | expired | canceled
	OfferingPaidAt *time.Time `gorm:"type:timestamptz;column:offering_paid_at" json:"offering_paid_at,omitempty"`

	OfferingDonorName  string `gorm:"type:varchar(100);not null;default:'';column:offering_donor_name" json:"offering_donor_name"`
	OfferingDonorEmail string `gorm:"type:varchar(150);not null;default:'';column:offering_donor_email" json:"offering_donor_email"`

	OfferingCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:offering_created_at" json:"offering_created_at"`
	OfferingUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:offering_updated_at" json:"offering_updated_at"`
	OfferingDeletedAt gorm.DeletedAt `gorm:"column:offering_deleted_at;index" json:"offering_deleted_at,omitempty"`
}

func (Offering) TableName() string { return "offerings" }
