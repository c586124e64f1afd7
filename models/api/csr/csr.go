package csrapimodels

import (
	"time"

	dbmodels "recruitment-portal-backend/models/db"
)

type CSRCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

func (r CSRCreateRequest) ToRecord() dbmodels.CSRActivity {
	return dbmodels.CSRActivity{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		IsActive:    true,
	}
}

// CSRUpdateRequest only touches the fields present in the body.
type CSRUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	IsActive    *bool   `json:"is_active"`
}

func (r CSRUpdateRequest) ToUpdateMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if r.Title != nil {
		updMap["title"] = *r.Title
	}
	if r.Description != nil {
		updMap["description"] = *r.Description
	}
	if r.Image != nil {
		updMap["image"] = *r.Image
	}
	if r.IsActive != nil {
		updMap["is_active"] = *r.IsActive
	}
	return updMap
}

type CSRView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func CSRConvert(rec dbmodels.CSRActivity) CSRView {
	return CSRView{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Image:       rec.Image,
		IsActive:    rec.IsActive,
		CreatedAt:   rec.CreatedAt,
	}
}

type UploadResponse struct {
	FilePath string `json:"file_path"`
}
