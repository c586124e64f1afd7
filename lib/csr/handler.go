package csr

import (
	"context"

	"github.com/pkg/errors"

	"recruitment-portal-backend/db"
	csrstore "recruitment-portal-backend/lib/csr/store"
	filestorage "recruitment-portal-backend/lib/file-storage"
	csrapimodels "recruitment-portal-backend/models/api/csr"
)

var (
	ErrNotFound        = errors.New("CSR not found")
	ErrInvalidActivity = errors.New("invalid CSR activity")
)

type Provider interface {
	ListActive() ([]csrapimodels.CSRView, error)
	UploadImage(ctx context.Context, fileName, contentType string, content []byte) (string, error)
	Create(data csrapimodels.CSRCreateRequest) (csrapimodels.CSRView, error)
	Update(id uint, data csrapimodels.CSRUpdateRequest) (csrapimodels.CSRView, error)
	// SoftDelete flips is_active off; rows are never physically removed.
	SoftDelete(id uint) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: csrstore.NewInstance(db.DB),
	}
}

type impl struct {
	store csrstore.Provider
}

func (i impl) ListActive() ([]csrapimodels.CSRView, error) {
	list, err := i.store.ListActive()
	if err != nil {
		return nil, err
	}
	result := make([]csrapimodels.CSRView, 0, len(list))
	for _, rec := range list {
		result = append(result, csrapimodels.CSRConvert(rec))
	}
	return result, nil
}

// UploadImage enforces the image allow-list before anything touches storage.
func (i impl) UploadImage(ctx context.Context, fileName, contentType string, content []byte) (string, error) {
	if err := filestorage.CheckCSRImageType(contentType); err != nil {
		return "", err
	}
	return filestorage.Instance.Save(ctx, filestorage.CSRDir, fileName, contentType, content)
}

func (i impl) Create(data csrapimodels.CSRCreateRequest) (csrapimodels.CSRView, error) {
	rec := data.ToRecord()
	if err := rec.Validate(); err != nil {
		return csrapimodels.CSRView{}, errors.Wrap(ErrInvalidActivity, err.Error())
	}
	rec, err := i.store.Create(rec)
	if err != nil {
		return csrapimodels.CSRView{}, errors.Wrap(err, "failed to create CSR activity")
	}
	return csrapimodels.CSRConvert(rec), nil
}

func (i impl) Update(id uint, data csrapimodels.CSRUpdateRequest) (csrapimodels.CSRView, error) {
	existing, err := i.store.GetByID(id)
	if err != nil {
		return csrapimodels.CSRView{}, err
	}
	if existing == nil {
		return csrapimodels.CSRView{}, ErrNotFound
	}
	if err = i.store.Update(id, data.ToUpdateMap()); err != nil {
		return csrapimodels.CSRView{}, errors.Wrap(err, "failed to update CSR activity")
	}
	updated, err := i.store.GetByID(id)
	if err != nil {
		return csrapimodels.CSRView{}, err
	}
	if updated == nil {
		return csrapimodels.CSRView{}, ErrNotFound
	}
	return csrapimodels.CSRConvert(*updated), nil
}

func (i impl) SoftDelete(id uint) error {
	existing, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return i.store.Update(id, map[string]interface{}{"is_active": false})
}
