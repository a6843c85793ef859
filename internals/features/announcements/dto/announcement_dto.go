// file: internals/features/announcements/dto/announcement_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/lib/pq"

	amodel "gerejaku_backend/internals/features/announcements/model"
)

type CreateAnnouncementRequest struct {
	AnnouncementTitle   string    `json:"announcement_title" validate:"required,max=200"`
	AnnouncementContent string    `json:"announcement_content" validate:"required"`
	AnnouncementDate    time.Time `json:"announcement_date" validate:"required"`
	AnnouncementTags    []string  `json:"announcement_tags" validate:"omitempty,dive,max=40"`
	AnnouncementIsPublished *bool `json:"announcement_is_published" validate:"omitempty"`
}

func (r *CreateAnnouncementRequest) ToModel() *amodel.AnnouncementModel {
	return &amodel.AnnouncementModel{
		AnnouncementTitle:       strings.TrimSpace(r.AnnouncementTitle),
		AnnouncementContent:     strings.TrimSpace(r.AnnouncementContent),
		AnnouncementDate:        r.AnnouncementDate,
		AnnouncementTags:        pq.StringArray(r.AnnouncementTags),
		AnnouncementIsPublished: r.AnnouncementIsPublished != nil && *r.AnnouncementIsPublished,
	}
}

type UpdateAnnouncementRequest struct {
	AnnouncementTitle   *string    `json:"announcement_title" validate:"omitempty,max=200"`
	AnnouncementContent *string    `json:"announcement_content" validate:"omitempty"`
	AnnouncementDate    *time.Time `json:"announcement_date" validate:"omitempty"`
	AnnouncementTags    []string   `json:"announcement_tags" validate:"omitempty,dive,max=40"`
	AnnouncementIsPublished *bool  `json:"announcement_is_published" validate:"omitempty"`
}

func (r *UpdateAnnouncementRequest) Apply(m *amodel.AnnouncementModel) {
	if r.AnnouncementTitle != nil {
		m.AnnouncementTitle = strings.TrimSpace(*r.AnnouncementTitle)
	}
	if r.AnnouncementContent != nil {
		m.AnnouncementContent = strings.TrimSpace(*r.AnnouncementContent)
	}
	if r.AnnouncementDate != nil {
		m.AnnouncementDate = *r.AnnouncementDate
	}
	if r.AnnouncementTags != nil {
		m.AnnouncementTags = pq.StringArray(r.AnnouncementTags)
	}
	if r.AnnouncementIsPublished != nil {
		m.AnnouncementIsPublished = *r.AnnouncementIsPublished
	}
}
