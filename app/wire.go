//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/ncobase/taskboard/config"
	"github.com/ncobase/taskboard/data"
	"github.com/ncobase/taskboard/data/repository"
	"github.com/ncobase/taskboard/handler"
	"github.com/ncobase/taskboard/logging/logger"
	"github.com/ncobase/taskboard/logging/observes"
	"github.com/ncobase/taskboard/service"
)

// InitializeApp wires up the entire application with all dependencies.
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	panic(wire.Build(
		config.ProviderSet,
		logger.ProviderSet,
		observes.ProviderSet,
		data.ProviderSet,
		repository.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,
		wire.Bind(new(handler.Pinger), new(*data.Data)),
		NewApp,
	))
}
