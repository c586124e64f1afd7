package db

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"recruitment-portal-backend/config"
	dbmodels "recruitment-portal-backend/models/db"
)

func InitPreload() {
	addBootstrapAdmin()
}

// addBootstrapAdmin creates the initial admin account from config, once.
func addBootstrapAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("bootstrap admin not created, ADMIN_EMAIL is not set")
		return
	}
	var count int64
	err := DB.Model(&dbmodels.Admin{}).
		Where("email = ?", config.Conf.Admin.Email).
		Count(&count).
		Error
	if err != nil {
		log.WithError(err).Error("failed to check for bootstrap admin")
		return
	}
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(config.Conf.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("failed to hash bootstrap admin password")
		return
	}
	rec := dbmodels.Admin{
		Email:    config.Conf.Admin.Email,
		Password: string(hash),
		IsActive: true,
	}
	if err := DB.Create(&rec).Error; err != nil {
		log.WithError(err).Error("failed to create bootstrap admin")
		return
	}
	log.WithField("email", rec.Email).Info("bootstrap admin created")
}
