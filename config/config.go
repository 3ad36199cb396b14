package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "TASKBOARD"

// Config represents the configuration implementation.
type Config struct {
	AppName  string
	RunMode  string
	Server   *Server
	Observes *Observes
	Logger   *Logger
	Data     *Data
	Viper    *viper.Viper
}

// Server holds the HTTP listener settings.
type Server struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Addr returns host:port.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoadConfig loads the configuration from configPath. With an empty path the
// default locations are searched and a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("/etc/taskboard")
		v.AddConfigPath("$HOME/.taskboard")
		v.AddConfigPath(".")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return build(v), nil
}

func build(v *viper.Viper) *Config {
	return &Config{
		AppName:  getStringOrDefault(v, "app_name", "taskboard"),
		RunMode:  getStringOrDefault(v, "run_mode", "release"),
		Server:   getServerConfig(v),
		Observes: getObservesConfig(v),
		Logger:   getLoggerConfig(v),
		Data:     getDataConfig(v),
		Viper:    v,
	}
}

func getServerConfig(v *viper.Viper) *Server {
	return &Server{
		Host:            getStringOrDefault(v, "server.host", "127.0.0.1"),
		Port:            getIntOrDefault(v, "server.port", 8080),
		ReadTimeout:     getDurationOrDefault(v, "server.read_timeout", 15*time.Second),
		WriteTimeout:    getDurationOrDefault(v, "server.write_timeout", 15*time.Second),
		IdleTimeout:     getDurationOrDefault(v, "server.idle_timeout", 60*time.Second),
		ShutdownTimeout: getDurationOrDefault(v, "server.shutdown_timeout", 30*time.Second),
	}
}

// Watch watches the configuration file and calls callback with the
// reloaded configuration when it changes. It does nothing when cfg was not
// loaded from a file.
func Watch(cfg *Config, callback func(*Config)) {
	v := cfg.Viper
	if v == nil || v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		callback(build(v))
	})
	v.WatchConfig()
}
