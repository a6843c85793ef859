// file: internals/features/songs/dto/song_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	lyrics "gerejaku_backend/internals/features/songs/lyrics"
	smodel "gerejaku_backend/internals/features/songs/model"
)

/* ==============================
   CREATE / UPDATE
============================== */

type CreateSongRequest struct {
	SongTitle    string           `json:"song_title" validate:"required,max=200"`
	SongNumber   string           `json:"song_number" validate:"required,max=20"`
	SongCategory string           `json:"song_category" validate:"required,max=20"`
	SongLyrics   *json.RawMessage `json:"song_lyrics" validate:"omitempty"`
}

func (r *CreateSongRequest) ToModel() *smodel.SongModel {
	var lyr datatypes.JSON = datatypes.JSON("[]")
	if r.SongLyrics != nil && len(*r.SongLyrics) > 0 {
		lyr = datatypes.JSON(*r.SongLyrics)
	}
	return &smodel.SongModel{
		SongTitle:    strings.TrimSpace(r.SongTitle),
		SongNumber:   strings.TrimSpace(r.SongNumber),
		SongCategory: strings.TrimSpace(r.SongCategory),
		SongLyrics:   lyr,
	}
}

type UpdateSongRequest struct {
	SongTitle    *string          `json:"song_title" validate:"omitempty,max=200"`
	SongNumber   *string          `json:"song_number" validate:"omitempty,max=20"`
	SongCategory *string          `json:"song_category" validate:"omitempty,max=20"`
	SongLyrics   *json.RawMessage `json:"song_lyrics" validate:"omitempty"`
}

func (r *UpdateSongRequest) Apply(m *smodel.SongModel) {
	if r.SongTitle != nil {
		m.SongTitle = strings.TrimSpace(*r.SongTitle)
	}
	if r.SongNumber != nil {
		m.SongNumber = strings.TrimSpace(*r.SongNumber)
	}
	if r.SongCategory != nil {
		m.SongCategory = strings.TrimSpace(*r.SongCategory)
	}
	if r.SongLyrics != nil && len(*r.SongLyrics) > 0 {
		m.SongLyrics = datatypes.JSON(*r.SongLyrics)
	}
}

/* ==============================
   RESPONSE
============================== */

// SongSummaryResponse: proyeksi hasil pencarian (tanpa lirik).
type SongSummaryResponse struct {
	SongID       uuid.UUID `json:"song_id"`
	SongTitle    string    `json:"song_title"`
	SongNumber   string    `json:"song_number"`
	SongCategory string    `json:"song_category"`
}

func ToSummary(m *smodel.SongModel) SongSummaryResponse {
	return SongSummaryResponse{
		SongID:       m.SongID,
		SongTitle:    m.SongTitle,
		SongNumber:   m.SongNumber,
		SongCategory: m.SongCategory,
	}
}

// SongResponse: detail lagu dengan lirik TERNORMALISASI (encoding lama
// sudah dipetakan ke bentuk section di boundary ini).
type SongResponse struct {
	SongID       uuid.UUID        `json:"song_id"`
	SongTitle    string           `json:"song_title"`
	SongNumber   string           `json:"song_number"`
	SongCategory string           `json:"song_category"`
	SongSections []lyrics.Section `json:"song_sections"`
	SongUpdatedAt time.Time       `json:"song_updated_at"`
}

func ToResponse(m *smodel.SongModel) SongResponse {
	return SongResponse{
		SongID:        m.SongID,
		SongTitle:     m.SongTitle,
		SongNumber:    m.SongNumber,
		SongCategory:  m.SongCategory,
		SongSections:  lyrics.Normalize(json.RawMessage(m.SongLyrics)),
		SongUpdatedAt: m.SongUpdatedAt,
	}
}
