package config

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger construit le logger partagé des programmes à partir de LogLevel.
func (c Config) NewLogger(out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, &ConfigError{Field: "logLevel", Err: err}
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log, nil
}
