package filestorage

import (
	"bytes"
	"context"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// NewS3Instance stores files as objects in a single bucket; object keys mirror
// the relative paths the disk backend produces.
func NewS3Instance(client *minio.Client, bucket, baseDir string) Provider {
	return &s3Impl{
		client:  client,
		bucket:  bucket,
		baseDir: baseDir,
	}
}

type s3Impl struct {
	client  *minio.Client
	bucket  string
	baseDir string
}

func (i s3Impl) Stage(ctx context.Context, dir, fileName, contentType string, content []byte) (StagedFile, error) {
	relPath := path.Join(i.baseDir, dir, storedName(fileName))
	err := i.put(ctx, relPath+stageSuffix, contentType, content)
	if err != nil {
		return StagedFile{}, errors.Wrap(err, "failed to stage object")
	}
	return StagedFile{RelPath: relPath}, nil
}

func (i s3Impl) Commit(ctx context.Context, staged StagedFile) error {
	_, err := i.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: i.bucket, Object: staged.RelPath},
		minio.CopySrcOptions{Bucket: i.bucket, Object: staged.RelPath + stageSuffix},
	)
	if err != nil {
		return errors.Wrap(err, "failed to finalize staged object")
	}
	return i.client.RemoveObject(ctx, i.bucket, staged.RelPath+stageSuffix, minio.RemoveObjectOptions{})
}

func (i s3Impl) Discard(ctx context.Context, staged StagedFile) error {
	err := i.client.RemoveObject(ctx, i.bucket, staged.RelPath+stageSuffix, minio.RemoveObjectOptions{})
	return errors.Wrap(err, "failed to discard staged object")
}

func (i s3Impl) Save(ctx context.Context, dir, fileName, contentType string, content []byte) (string, error) {
	relPath := path.Join(i.baseDir, dir, storedName(fileName))
	if err := i.put(ctx, relPath, contentType, content); err != nil {
		return "", errors.Wrap(err, "failed to store object")
	}
	return relPath, nil
}

func (i s3Impl) Remove(ctx context.Context, relPath string) error {
	return i.client.RemoveObject(ctx, i.bucket, relPath, minio.RemoveObjectOptions{})
}

func (i s3Impl) Exists(ctx context.Context, relPath string) (bool, error) {
	_, err := i.client.StatObject(ctx, i.bucket, relPath, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i s3Impl) put(ctx context.Context, object, contentType string, content []byte) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.client.PutObject(ctx, i.bucket, object, bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}
