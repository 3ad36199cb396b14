package observes

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryOptions configures error reporting.
type SentryOptions struct {
	Dsn         string
	Name        string
	Release     string
	Environment string
	SampleRate  float64
}

// NewSentry initializes sentry. It is a no-op without a DSN. The returned
// func flushes buffered events and is safe to call either way.
func NewSentry(opt *SentryOptions) (func(), error) {
	noop := func() {}
	// if not exist sentry config, skip initialization
	if opt == nil || opt.Dsn == "" {
		return noop, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              opt.Dsn,
		AttachStacktrace: true,
		SampleRate:       opt.SampleRate,
		ServerName:       opt.Name,
		Release:          opt.Release,
		Environment:      opt.Environment,
	})
	if err != nil {
		return noop, err
	}

	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}
