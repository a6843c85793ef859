// file: internals/features/galleries/model/gallery_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: gallery_albums & gallery_photos
   ========================================================= */

type GalleryAlbumModel struct {
	GalleryAlbumID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:gallery_album_id" json:"gallery_album_id"`
	GalleryAlbumTitle string    `gorm:"type:varchar(150);not null;column:gallery_album_title" json:"gallery_album_title"`
	GalleryAlbumSlug  string    `gorm:"type:varchar(160);not null;uniqueIndex;column:gallery_album_slug" json:"gallery_album_slug"`
	GalleryAlbumDesc  string    `gorm:"type:text;not null;default:'';column:gallery_album_desc" json:"gallery_album_desc"`

	GalleryAlbumIsPublic bool `gorm:"type:boolean;not null;default:true;column:gallery_album_is_public" json:"gallery_album_is_public"`

	GalleryAlbumCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:gallery_album_created_at" json:"gallery_album_created_at"`
	GalleryAlbumUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:gallery_album_updated_at" json:"gallery_album_updated_at"`
	GalleryAlbumDeletedAt gorm.DeletedAt `gorm:"column:gallery_album_deleted_at;index" json:"gallery_album_deleted_at,omitempty"`
}

func (GalleryAlbumModel) TableName() string { return "gallery_albums" }

type GalleryPhotoModel struct {
	GalleryPhotoID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:gallery_photo_id" json:"gallery_photo_id"`
	GalleryPhotoAlbumID uuid.UUID `gorm:"type:uuid;not null;index;column:gallery_photo_album_id" json:"gallery_photo_album_id"`
	GalleryPhotoURL     string    `gorm:"type:text;not null;column:gallery_photo_url" json:"gallery_photo_url"`
	GalleryPhotoCaption string    `gorm:"type:varchar(250);not null;default:'';column:gallery_photo_caption" json:"gallery_photo_caption"`

	GalleryPhotoCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:gallery_photo_created_at" json:"gallery_photo_created_at"`
}

func (GalleryPhotoModel) TableName() string { return "gallery_photos" }
