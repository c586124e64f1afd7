package filestorage

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"recruitment-portal-backend/config"
	s3client "recruitment-portal-backend/s3"
)

// Upload subdirectories keyed by resource type.
const (
	CSRDir          = "csr"
	ApplicationsDir = "job_applications"
)

var ErrUnsupportedMedia = errors.New("unsupported media type")

// StagedFile is an upload written under a temporary name. RelPath is the final
// relative path to persist on the owning row; it becomes readable after Commit.
type StagedFile struct {
	RelPath string
}

type Provider interface {
	// Stage writes the upload under a temporary name.
	Stage(ctx context.Context, dir, fileName, contentType string, content []byte) (StagedFile, error)
	// Commit renames a staged upload to its final path.
	Commit(ctx context.Context, staged StagedFile) error
	// Discard removes a staged upload that will not be committed.
	Discard(ctx context.Context, staged StagedFile) error
	// Save stores an upload in one step and returns its relative path.
	Save(ctx context.Context, dir, fileName, contentType string, content []byte) (string, error)
	// Remove deletes a stored file; a missing file is not an error.
	Remove(ctx context.Context, relPath string) error
	Exists(ctx context.Context, relPath string) (bool, error)
}

var Instance Provider

func NewHandler() {
	if config.Conf.S3.Endpoint != "" {
		Instance = NewS3Instance(s3client.Client, config.Conf.S3.BucketName, config.Conf.FileStorage.UploadDir)
		return
	}
	Instance = NewDiskInstance(config.Conf.FileStorage.UploadDir)
}

var csrImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

// application attachments additionally accept PDF
var attachmentTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
}

func CheckCSRImageType(contentType string) error {
	if _, ok := csrImageTypes[normalizeContentType(contentType)]; !ok {
		return errors.Wrap(ErrUnsupportedMedia, "only JPG or PNG images are allowed")
	}
	return nil
}

func CheckAttachmentType(contentType string) error {
	if _, ok := attachmentTypes[normalizeContentType(contentType)]; !ok {
		return errors.Wrap(ErrUnsupportedMedia, "only PDF, JPG or PNG attachments are allowed")
	}
	return nil
}

func normalizeContentType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// storedName builds a collision-resistant name keeping the original extension.
func storedName(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return uuid.New().String() + ext
}

const stageSuffix = ".part"
