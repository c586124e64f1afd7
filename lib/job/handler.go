package job

import (
	"github.com/pkg/errors"

	"recruitment-portal-backend/db"
	jobstore "recruitment-portal-backend/lib/job/store"
	jobapimodels "recruitment-portal-backend/models/api/job"
)

var ErrNotFound = errors.New("Job not found")

type Provider interface {
	Create(data jobapimodels.JobData) (jobapimodels.JobView, error)
	Update(id uint, data jobapimodels.JobData) (jobapimodels.JobView, error)
	GetByID(id uint) (jobapimodels.JobView, error)
	List(page, limit int) (jobapimodels.PaginatedJobResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(data jobapimodels.JobData) (jobapimodels.JobView, error) {
	rec, err := i.store.Create(data.ToRecord())
	if err != nil {
		return jobapimodels.JobView{}, errors.Wrap(err, "failed to create job")
	}
	return jobapimodels.JobConvert(rec), nil
}

func (i impl) Update(id uint, data jobapimodels.JobData) (jobapimodels.JobView, error) {
	existing, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if existing == nil {
		return jobapimodels.JobView{}, ErrNotFound
	}
	if err = i.store.Update(id, data.ToRecord()); err != nil {
		return jobapimodels.JobView{}, errors.Wrap(err, "failed to update job")
	}
	updated, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if updated == nil {
		return jobapimodels.JobView{}, ErrNotFound
	}
	return jobapimodels.JobConvert(*updated), nil
}

func (i impl) GetByID(id uint) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if rec == nil {
		return jobapimodels.JobView{}, ErrNotFound
	}
	return jobapimodels.JobConvert(*rec), nil
}

func (i impl) List(page, limit int) (jobapimodels.PaginatedJobResponse, error) {
	list, rowCount, err := i.store.List(page, limit)
	if err != nil {
		return jobapimodels.PaginatedJobResponse{}, err
	}
	result := jobapimodels.PaginatedJobResponse{
		Total: rowCount,
		Page:  page,
		Limit: limit,
		Data:  make([]jobapimodels.JobView, 0, len(list)),
	}
	for _, rec := range list {
		result.Data = append(result.Data, jobapimodels.JobConvert(rec))
	}
	return result, nil
}
