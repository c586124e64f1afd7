package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"recruitment-portal-backend/config"
	s3client "recruitment-portal-backend/s3"
)

// InitS3 is skipped entirely when no endpoint is configured; files then go to local disk.
func InitS3() {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 endpoint is not configured, uploads will be stored on local disk")
		return
	}
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to initialize S3 client")
		return
	}
	s3client.Client = minioClient

	if err = s3client.MakeBucket(context.Background()); err != nil {
		log.WithError(err).Error("failed to ensure S3 bucket exists")
		return
	}
	log.Info("S3 client initialized")
}
