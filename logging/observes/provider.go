package observes

import (
	"context"
	"time"

	"github.com/google/wire"

	"github.com/ncobase/taskboard/config"
	"github.com/ncobase/taskboard/version"
)

const shutdownTimeout = 5 * time.Second

// ProviderSet is the wire provider set for the observes package.
var ProviderSet = wire.NewSet(ProvideObserves)

// Observes marks that error reporting and tracing have been set up.
type Observes struct {
	Sentry bool
	Tracer bool
}

// ProvideObserves initializes sentry and the tracer from configuration. The
// cleanup flushes both.
func ProvideObserves(cfg *config.Config) (*Observes, func(), error) {
	obs := &Observes{}
	oc := cfg.Observes
	if oc == nil {
		return obs, func() {}, nil
	}

	info := version.GetVersionInfo()

	var sentryOpts *SentryOptions
	if oc.Sentry != nil {
		release := oc.Sentry.Release
		if release == "" {
			release = info.Version
		}
		environment := oc.Sentry.Environment
		if environment == "" {
			environment = cfg.RunMode
		}
		sentryOpts = &SentryOptions{
			Dsn:         oc.Sentry.Endpoint,
			Name:        cfg.AppName,
			Release:     release,
			Environment: environment,
			SampleRate:  oc.Sentry.SampleRate,
		}
		obs.Sentry = oc.Sentry.Endpoint != ""
	}
	flush, err := NewSentry(sentryOpts)
	if err != nil {
		return nil, nil, err
	}

	var tracerOpts *TracerOption
	if oc.Tracer != nil {
		environment := oc.Tracer.Environment
		if environment == "" {
			environment = cfg.RunMode
		}
		tracerOpts = &TracerOption{
			URL:                oc.Tracer.Endpoint,
			Insecure:           oc.Tracer.Insecure,
			Name:               oc.Tracer.ServiceName,
			Version:            info.Version,
			Branch:             info.Branch,
			Revision:           info.Revision,
			Environment:        environment,
			SamplingRate:       oc.Tracer.SamplingRate,
			BatchTimeout:       oc.Tracer.BatchTimeout,
			ExportTimeout:      oc.Tracer.ExportTimeout,
			MaxExportBatchSize: oc.Tracer.MaxExportBatchSize,
		}
		obs.Tracer = oc.Tracer.Endpoint != ""
	}
	shutdown, err := NewTracer(tracerOpts)
	if err != nil {
		flush()
		return nil, nil, err
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdown(ctx)
		flush()
	}
	return obs, cleanup, nil
}
