package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "recruitment-portal-backend/models/db"
)

func AutoMigrateDB() error {
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "failed to migrate Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "failed to migrate Application")
	}
	if err := DB.AutoMigrate(&dbmodels.CSRActivity{}); err != nil {
		return errors.Wrap(err, "failed to migrate CSRActivity")
	}
	if err := DB.AutoMigrate(&dbmodels.Admin{}); err != nil {
		return errors.Wrap(err, "failed to migrate Admin")
	}
	log.Info("migrations finished")
	return nil
}
