package initializers

import (
	"context"

	"recruitment-portal-backend/config"
	"recruitment-portal-backend/fiberlog"
	adminauth "recruitment-portal-backend/lib/admin-auth"
	"recruitment-portal-backend/lib/application"
	"recruitment-portal-backend/lib/csr"
	xlsexport "recruitment-portal-backend/lib/export/xls"
	filestorage "recruitment-portal-backend/lib/file-storage"
	"recruitment-portal-backend/lib/job"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler()
	adminauth.NewHandler()
	job.NewHandler()
	csr.NewHandler()
	application.NewHandler()
	xlsexport.NewHandler()
}
