package dbmodels

import (
	"github.com/pkg/errors"
)

type CSRActivity struct {
	BaseModel
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	Image       string `gorm:"type:varchar(255)"`
	IsActive    bool   `gorm:"default:true"`
}

func (c CSRActivity) Validate() error {
	if c.Title == "" {
		return errors.New("title is required")
	}
	if c.Description == "" {
		return errors.New("description is required")
	}
	return nil
}
