package csrstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "recruitment-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.CSRActivity) (dbmodels.CSRActivity, error)
	Update(id uint, updMap map[string]interface{}) error
	GetByID(id uint) (*dbmodels.CSRActivity, error)
	ListActive() ([]dbmodels.CSRActivity, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CSRActivity) (dbmodels.CSRActivity, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return dbmodels.CSRActivity{}, err
	}
	return rec, nil
}

func (i impl) Update(id uint, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.CSRActivity{}).
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

func (i impl) GetByID(id uint) (*dbmodels.CSRActivity, error) {
	rec := dbmodels.CSRActivity{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) ListActive() (list []dbmodels.CSRActivity, err error) {
	list = []dbmodels.CSRActivity{}
	err = i.db.
		Model(&dbmodels.CSRActivity{}).
		Where("is_active = ?", true).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
