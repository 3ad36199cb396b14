package data

import (
	"context"

	"github.com/google/wire"
	"github.com/ncobase/taskboard/data/config"
	"github.com/ncobase/taskboard/logging/logger"
)

// ProviderSet is the wire provider set for the data package.
var ProviderSet = wire.NewSet(ProvideData)

// ProvideData initializes and returns the data layer with cleanup function.
// The cleanup function closes all connections and should be called when the
// application shuts down.
func ProvideData(cfg *config.Config, l *logger.Logger) (*Data, func(), error) {
	return New(context.Background(), cfg, WithQueryLogger(func(ctx context.Context, args ...any) {
		l.Debug(ctx, args...)
	}))
}
