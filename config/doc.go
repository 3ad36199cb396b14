// Package config loads the service configuration with viper from YAML, JSON
// or TOML files and TASKBOARD_ prefixed environment variables.
//
// Load from an explicit file, or search /etc/taskboard, $HOME/.taskboard,
// the working directory and the executable's directory for config.*:
//
//	cfg, err := config.LoadConfig("./config.yaml")
//	cfg, err := config.LoadConfig("")
//
// Environment variables override file values, with dots replaced by
// underscores:
//
//	TASKBOARD_SERVER_PORT=9090
//	TASKBOARD_DATA_DATABASE_MASTER_DRIVER=postgres
//
// Example YAML:
//
//	app_name: taskboard
//	run_mode: release
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	logger:
//	  level: 4
//	  format: json
//	data:
//	  database:
//	    migrate: true
//	    master:
//	      driver: sqlite
//	      source: file:taskboard.db?cache=shared&_fk=1
//
// Watch re-reads the file on change:
//
//	config.Watch(cfg, func(c *config.Config) {
//	    log.SetLevelValue(c.Logger.Level)
//	})
package config
