// Package config loads the monolith server configuration.
//
// Configuration is layered: built-in defaults, then an optional file, then
// environment variables.
//
// # Configuration File
//
// LoadConfig accepts either a file or a directory. A directory is searched for
// config.yaml, config.yml and config.toml in that order. YAML is decoded with
// gopkg.in/yaml.v3 and TOML with github.com/BurntSushi/toml.
//
// Default location: ~/.config/monolith
// Custom location: Specified via --config-path flag
//
// Example config.yaml:
//
//	server:
//	  transport: streamable-http
//	  host: 0.0.0.0
//	  port: 8090
//	  metricsPath: /metrics
//	logging:
//	  level: debug
//	  format: json
//	functions:
//	  timezone: Europe/Berlin
//
// # Environment Overrides
//
// Every field can be overridden with a MONOLITH_ prefixed variable, processed
// by github.com/kelseyhightower/envconfig:
//
//	MONOLITH_SERVER_TRANSPORT=sse
//	MONOLITH_SERVER_PORT=9000
//	MONOLITH_LOGGING_LEVEL=debug
//	MONOLITH_FUNCTIONS_TIMEZONE=UTC
//
// # Validation
//
// The merged configuration is validated before it is returned. All problems
// are reported together as ValidationErrors.
package config
