package fiberlog

import "github.com/sirupsen/logrus"

// Config controls the request-log middleware: which logger receives the
// entries and which tags each entry carries.
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault logs to the logrus standard logger.
var ConfigDefault = Config{
	Logger: nil,
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
