package schemac

import (
	"github.com/sirupsen/logrus"
)

// Config defines the parameters for a Compiler.
type Config struct {
	// Logger receives a summary entry per compilation and extension. Defaults
	// to the logrus standard logger.
	Logger logrus.FieldLogger
}

func (cfg *Config) logger() logrus.FieldLogger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return logrus.StandardLogger()
}
