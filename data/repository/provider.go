package repository

import (
	"github.com/google/wire"
	"github.com/ncobase/taskboard/data"
	"github.com/ncobase/taskboard/logging/logger"
)

// ProviderSet is the wire provider set for the repository package.
var ProviderSet = wire.NewSet(ProvideRepository)

// ProvideRepository builds the repositories with the default clock and id
// generator.
func ProvideRepository(d *data.Data, l *logger.Logger) *Repository {
	return New(d, l)
}
