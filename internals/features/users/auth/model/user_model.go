// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: users
   ========================================================= */

type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail    string    `gorm:"type:varchar(150);not null;uniqueIndex;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"type:text;not null;default:'';column:user_password" json:"-"` // bcrypt; kosong untuk akun Google
	UserGoogleID *string   `gorm:"type:varchar(64);uniqueIndex;column:user_google_id" json:"-"`

	UserRole     string `gorm:"type:varchar(20);not null;default:'member';column:user_role" json:"user_role"` // owner | admin | member
	UserIsActive bool   `gorm:"type:boolean;not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
