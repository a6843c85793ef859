// file: internals/features/songs/model/song_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: songs (buku nyanyian: KJ, PKJ, NKB, dst.)
   =========================================================

   Kolom lirik JSONB memuat salah satu dari dua encoding historis:
   - lama : [{"verseNumber":1,"content":"..."}]
   - baru : [{"sectionType":"verse","number":1,"content":"..."}]
   Normalisasi dilakukan di package lyrics, bukan di sini.
*/

type SongModel struct {
	SongID       uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:song_id" json:"song_id"`
	SongTitle    string         `gorm:"type:varchar(200);not null;column:song_title" json:"song_title"`
	SongNumber   string         `gorm:"type:varchar(20);not null;column:song_number" json:"song_number"`
	SongCategory string         `gorm:"type:varchar(20);not null;column:song_category" json:"song_category"`
	SongLyrics   datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:song_lyrics" json:"song_lyrics"`

	SongCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:song_created_at" json:"song_created_at"`
	SongUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:song_updated_at" json:"song_updated_at"`
	SongDeletedAt gorm.DeletedAt `gorm:"column:song_deleted_at;index" json:"song_deleted_at,omitempty"`
}

func (SongModel) TableName() string { return "songs" }
