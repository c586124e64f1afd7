package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"recruitment-portal-backend/models"
	applicationapimodels "recruitment-portal-backend/models/api/application"
	dbmodels "recruitment-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (dbmodels.Application, error)
	GetByID(id uint) (*dbmodels.Application, error)
	List(filter applicationapimodels.ListFilter) ([]dbmodels.Application, error)
	ListAll(skip, limit int) ([]dbmodels.Application, error)
	// StatusCounts aggregates per status over the job-scoped population only;
	// the status filter of the accompanying listing is deliberately not applied.
	StatusCounts(jobID uint) (map[string]int64, error)
	UpdateStatus(id uint, status models.ApplicationStatus) error
	Delete(id uint) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (dbmodels.Application, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return dbmodels.Application{}, err
	}
	return rec, nil
}

func (i impl) GetByID(id uint) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
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

func (i impl) List(filter applicationapimodels.ListFilter) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	tx := i.db.Model(&dbmodels.Application{})
	if filter.JobID != 0 {
		tx = tx.Where("job_id = ?", filter.JobID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	err = tx.Order("created_at desc").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListAll(skip, limit int) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.
		Model(&dbmodels.Application{}).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) StatusCounts(jobID uint) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Cnt    int64
	}
	rows := []statusCount{}
	tx := i.db.
		Model(&dbmodels.Application{}).
		Select("status, count(*) as cnt")
	if jobID != 0 {
		tx = tx.Where("job_id = ?", jobID)
	}
	err := tx.Group("status").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Cnt
	}
	return counts, nil
}

func (i impl) UpdateStatus(id uint, status models.ApplicationStatus) error {
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) Delete(id uint) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Application{}).
		Error
}
