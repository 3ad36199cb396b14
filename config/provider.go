package config

import "github.com/google/wire"

// ProviderSet is the wire provider set for the config package. It extracts
// the sub-configurations other packages depend on from *Config.
//
// Available configurations:
//   - *Logger: Logger configuration
//   - *Data: Data layer configuration
//   - *Observes: Sentry and tracer configuration
var ProviderSet = wire.NewSet(
	ProvideLoggerConfig,
	ProvideDataConfig,
	ProvideObservesConfig,
)

// ProvideLoggerConfig provides the logger configuration.
func ProvideLoggerConfig(cfg *Config) *Logger {
	if cfg == nil {
		return nil
	}
	return cfg.Logger
}

// ProvideDataConfig provides the data layer configuration.
func ProvideDataConfig(cfg *Config) *Data {
	if cfg == nil {
		return nil
	}
	return cfg.Data
}

// ProvideObservesConfig provides the observability configuration.
func ProvideObservesConfig(cfg *Config) *Observes {
	if cfg == nil {
		return nil
	}
	return cfg.Observes
}
