package adminstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "recruitment-portal-backend/models/db"
)

type Provider interface {
	FindActiveByEmail(email string) (*dbmodels.Admin, error)
	Update(id uint, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) FindActiveByEmail(email string) (*dbmodels.Admin, error) {
	rec := dbmodels.Admin{}
	err := i.db.
		Where("email = ?", email).
		Where("is_active = ?", true).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id uint, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Admin{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}
