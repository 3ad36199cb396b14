package logger

import (
	"github.com/google/wire"
	"github.com/ncobase/taskboard/logging/logger/config"
	"github.com/ncobase/taskboard/version"
)

// ProviderSet is the wire provider set for the logger package
var ProviderSet = wire.NewSet(ProvideLogger)

// ProvideLogger initializes and returns the standard logger
func ProvideLogger(cfg *config.Config) (*Logger, func(), error) {
	l := StdLogger()
	l.SetVersion(version.GetVersionInfo().Version)
	cleanup, err := l.Init(cfg)
	if err != nil {
		return nil, nil, err
	}
	return l, cleanup, nil
}
