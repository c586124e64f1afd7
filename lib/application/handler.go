package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"recruitment-portal-backend/config"
	"recruitment-portal-backend/db"
	applicationstore "recruitment-portal-backend/lib/application/store"
	filestorage "recruitment-portal-backend/lib/file-storage"
	jobstore "recruitment-portal-backend/lib/job/store"
	"recruitment-portal-backend/lib/smtp"
	"recruitment-portal-backend/models"
	applicationapimodels "recruitment-portal-backend/models/api/application"
	dbmodels "recruitment-portal-backend/models/db"
)

var (
	ErrNotFound       = errors.New("Application not found")
	ErrJobNotFound    = errors.New("Job not found")
	ErrInvalidCaptcha = errors.New("Invalid CAPTCHA")
	ErrUnknownStatus  = errors.New("unknown status")
)

// UploadedFile is one attachment read out of the multipart form.
type UploadedFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// SubmissionFiles are the three attachments every submission must carry.
type SubmissionFiles struct {
	PanCard UploadedFile
	Resume  UploadedFile
	Photo   UploadedFile
}

type Provider interface {
	Submit(ctx context.Context, payload applicationapimodels.SubmitRequest, files SubmissionFiles) (applicationapimodels.ApplicationView, error)
	List(filter applicationapimodels.ListFilter) (applicationapimodels.ListResponse, error)
	ListAll(skip, limit int) ([]applicationapimodels.ApplicationView, error)
	GetByID(id uint) (applicationapimodels.ApplicationView, error)
	GetRecord(id uint) (dbmodels.Application, error)
	UpdateStatus(id uint, status string) (applicationapimodels.StatusUpdateResponse, error)
	Delete(ctx context.Context, id uint) error
	BulkDelete(ctx context.Context, ids []uint) (deleted int, err error)
	ListForExport(filter applicationapimodels.ListFilter) ([]dbmodels.Application, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		applicationstore.NewInstance(db.DB),
		jobstore.NewInstance(db.DB),
		config.Conf.Auth.CaptchaToken,
	)
}

func NewInstance(store applicationstore.Provider, jobStore jobstore.Provider, captchaToken string) Provider {
	return impl{
		store:        store,
		jobStore:     jobStore,
		captchaToken: captchaToken,
	}
}

type impl struct {
	store        applicationstore.Provider
	jobStore     jobstore.Provider
	captchaToken string
}

// Submit runs the single validation pass, checks the CAPTCHA sentinel, stages
// the three attachments, persists the row and only then finalizes the files.
// No row is created unless all three files stored; staged files are discarded
// when any later step fails.
func (i impl) Submit(ctx context.Context, payload applicationapimodels.SubmitRequest, files SubmissionFiles) (applicationapimodels.ApplicationView, error) {
	if err := payload.Validate(); err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if payload.CaptchaToken != i.captchaToken {
		return applicationapimodels.ApplicationView{}, ErrInvalidCaptcha
	}
	for _, file := range []UploadedFile{files.PanCard, files.Resume, files.Photo} {
		if err := filestorage.CheckAttachmentType(file.ContentType); err != nil {
			return applicationapimodels.ApplicationView{}, err
		}
	}
	job, err := i.jobStore.GetByID(payload.JobID)
	if err != nil {
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "failed to look up job")
	}
	if job == nil {
		return applicationapimodels.ApplicationView{}, ErrJobNotFound
	}

	staged := make([]filestorage.StagedFile, 0, 3)
	discardStaged := func() {
		for _, sf := range staged {
			if dErr := filestorage.Instance.Discard(ctx, sf); dErr != nil {
				log.WithError(dErr).WithField("path", sf.RelPath).Error("failed to discard staged file")
			}
		}
	}
	for _, file := range []UploadedFile{files.PanCard, files.Resume, files.Photo} {
		sf, sErr := filestorage.Instance.Stage(ctx, filestorage.ApplicationsDir, file.Name, file.ContentType, file.Content)
		if sErr != nil {
			discardStaged()
			return applicationapimodels.ApplicationView{}, sErr
		}
		staged = append(staged, sf)
	}

	rec := payload.ToRecord(staged[0].RelPath, staged[1].RelPath, staged[2].RelPath)
	rec, err = i.store.Create(rec)
	if err != nil {
		discardStaged()
		return applicationapimodels.ApplicationView{}, errors.Wrap(err, "failed to persist application")
	}
	for _, sf := range staged {
		if cErr := filestorage.Instance.Commit(ctx, sf); cErr != nil {
			log.WithError(cErr).WithField("path", sf.RelPath).Error("failed to finalize stored file")
		}
	}

	i.notify(rec.Email, "Application received",
		fmt.Sprintf("Dear %s %s, your application for %s has been received and is pending review.",
			rec.FirstName, rec.LastName, rec.PositionApplied))
	return applicationapimodels.ApplicationConvert(rec), nil
}

func (i impl) List(filter applicationapimodels.ListFilter) (applicationapimodels.ListResponse, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return applicationapimodels.ListResponse{}, err
	}
	// the aggregate is scoped by job only, never by the status filter
	counts, err := i.store.StatusCounts(filter.JobID)
	if err != nil {
		return applicationapimodels.ListResponse{}, err
	}
	result := applicationapimodels.ListResponse{
		Applications: make([]applicationapimodels.ApplicationView, 0, len(list)),
		Stats:        buildStats(counts),
	}
	for _, rec := range list {
		result.Applications = append(result.Applications, applicationapimodels.ApplicationConvert(rec))
	}
	return result, nil
}

func buildStats(counts map[string]int64) applicationapimodels.Stats {
	stats := applicationapimodels.Stats{
		ByStatus: counts,
	}
	for status, count := range counts {
		stats.Total += count
		switch strings.ToLower(status) {
		case "pending":
			stats.Pending += count
		case "shortlisted":
			stats.Shortlisted += count
		case "maybe":
			stats.Maybe += count
		case "rejected":
			stats.Rejected += count
		}
	}
	return stats
}

func (i impl) ListAll(skip, limit int) ([]applicationapimodels.ApplicationView, error) {
	list, err := i.store.ListAll(skip, limit)
	if err != nil {
		return nil, err
	}
	result := make([]applicationapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicationapimodels.ApplicationConvert(rec))
	}
	return result, nil
}

func (i impl) GetByID(id uint) (applicationapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicationapimodels.ApplicationView{}, ErrNotFound
	}
	return applicationapimodels.ApplicationConvert(*rec), nil
}

func (i impl) GetRecord(id uint) (dbmodels.Application, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dbmodels.Application{}, err
	}
	if rec == nil {
		return dbmodels.Application{}, ErrNotFound
	}
	return *rec, nil
}

func (i impl) UpdateStatus(id uint, status string) (applicationapimodels.StatusUpdateResponse, error) {
	newStatus := models.ApplicationStatus(status)
	if !newStatus.IsValid() {
		return applicationapimodels.StatusUpdateResponse{}, ErrUnknownStatus
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicationapimodels.StatusUpdateResponse{}, err
	}
	if rec == nil {
		return applicationapimodels.StatusUpdateResponse{}, ErrNotFound
	}
	oldStatus := rec.Status
	if err = i.store.UpdateStatus(id, newStatus); err != nil {
		return applicationapimodels.StatusUpdateResponse{}, errors.Wrap(err, "failed to update status")
	}
	if oldStatus != newStatus {
		i.notify(rec.Email, "Application status updated",
			fmt.Sprintf("Dear %s %s, the status of your application for %s changed to %s.",
				rec.FirstName, rec.LastName, rec.PositionApplied, newStatus))
	}
	return applicationapimodels.StatusUpdateResponse{
		ID:        id,
		OldStatus: string(oldStatus),
		NewStatus: string(newStatus),
		Message:   "Status updated successfully",
	}, nil
}

func (i impl) Delete(ctx context.Context, id uint) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrNotFound
	}
	return i.deleteWithFiles(ctx, *rec)
}

// BulkDelete silently skips unknown ids and reports only the count actually
// removed. Deletions are sequential; a failure partway through leaves prior
// deletions committed.
func (i impl) BulkDelete(ctx context.Context, ids []uint) (deleted int, err error) {
	for _, id := range ids {
		rec, gErr := i.store.GetByID(id)
		if gErr != nil {
			return deleted, gErr
		}
		if rec == nil {
			continue
		}
		if dErr := i.deleteWithFiles(ctx, *rec); dErr != nil {
			return deleted, dErr
		}
		deleted++
	}
	return deleted, nil
}

func (i impl) deleteWithFiles(ctx context.Context, rec dbmodels.Application) error {
	if err := i.store.Delete(rec.ID); err != nil {
		return errors.Wrap(err, "failed to delete application")
	}
	for _, relPath := range rec.StoredFiles() {
		if err := filestorage.Instance.Remove(ctx, relPath); err != nil {
			log.WithError(err).WithField("path", relPath).Error("failed to remove stored file")
		}
	}
	return nil
}

func (i impl) ListForExport(filter applicationapimodels.ListFilter) ([]dbmodels.Application, error) {
	return i.store.List(filter)
}

// notify is best effort: a mail failure never fails the request.
func (i impl) notify(to, subject, message string) {
	if to == "" || smtp.Instance == nil {
		return
	}
	if err := smtp.Instance.SendEMail(to, subject, message); err != nil {
		log.WithError(err).WithField("recipient", to).Error("failed to send notification email")
	}
}
