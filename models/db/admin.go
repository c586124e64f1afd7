package dbmodels

import (
	"time"

	"github.com/pkg/errors"
)

type Admin struct {
	BaseModel
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	Password  string `gorm:"type:varchar(128)"`
	IsActive  bool   `gorm:"default:true"`
	LastLogin time.Time
}

func (a Admin) Validate() error {
	if a.Email == "" {
		return errors.New("email is required")
	}
	return nil
}
