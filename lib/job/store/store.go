package jobstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "recruitment-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (dbmodels.Job, error)
	Update(id uint, rec dbmodels.Job) error
	GetByID(id uint) (*dbmodels.Job, error)
	List(page, limit int) (list []dbmodels.Job, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (dbmodels.Job, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return dbmodels.Job{}, err
	}
	return rec, nil
}

func (i impl) Update(id uint, rec dbmodels.Job) error {
	rec.ID = id
	tx := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(rec)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) GetByID(id uint) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
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

func (i impl) List(page, limit int) (list []dbmodels.Job, rowCount int64, err error) {
	list = []dbmodels.Job{}
	err = i.db.
		Model(&dbmodels.Job{}).
		Count(&rowCount).
		Error
	if err != nil {
		return nil, 0, err
	}
	err = i.db.
		Model(&dbmodels.Job{}).
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}
