package filestorage

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
)

// NewDiskInstance stores files on the local filesystem beneath baseDir.
// Persisted references are slash-separated relative paths, e.g.
// uploads/job_applications/<uuid>.pdf.
func NewDiskInstance(baseDir string) Provider {
	return &diskImpl{baseDir: baseDir}
}

type diskImpl struct {
	baseDir string
}

func (i diskImpl) Stage(ctx context.Context, dir, fileName, contentType string, content []byte) (StagedFile, error) {
	relPath := path.Join(i.baseDir, dir, storedName(fileName))
	if err := i.write(relPath+stageSuffix, content); err != nil {
		return StagedFile{}, errors.Wrap(err, "failed to stage file")
	}
	return StagedFile{RelPath: relPath}, nil
}

func (i diskImpl) Commit(ctx context.Context, staged StagedFile) error {
	err := os.Rename(filepath.FromSlash(staged.RelPath+stageSuffix), filepath.FromSlash(staged.RelPath))
	return errors.Wrap(err, "failed to finalize staged file")
}

func (i diskImpl) Discard(ctx context.Context, staged StagedFile) error {
	err := os.Remove(filepath.FromSlash(staged.RelPath + stageSuffix))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to discard staged file")
	}
	return nil
}

func (i diskImpl) Save(ctx context.Context, dir, fileName, contentType string, content []byte) (string, error) {
	relPath := path.Join(i.baseDir, dir, storedName(fileName))
	if err := i.write(relPath, content); err != nil {
		return "", errors.Wrap(err, "failed to store file")
	}
	return relPath, nil
}

func (i diskImpl) Remove(ctx context.Context, relPath string) error {
	err := os.Remove(filepath.FromSlash(relPath))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove stored file")
	}
	return nil
}

func (i diskImpl) Exists(ctx context.Context, relPath string) (bool, error) {
	_, err := os.Stat(filepath.FromSlash(relPath))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i diskImpl) write(relPath string, content []byte) error {
	osPath := filepath.FromSlash(relPath)
	if err := os.MkdirAll(filepath.Dir(osPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(osPath, content, 0o644)
}
