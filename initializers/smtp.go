package initializers

import (
	"recruitment-portal-backend/config"
	"recruitment-portal-backend/lib/smtp"
)

func InitSmtp() {
	smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, config.Conf.Smtp.From, *config.Conf.Smtp.TLSEnabled)
}
