// Package config loads sheetfeed configuration.
//
// Values are layered, lowest precedence first: built-in defaults, a YAML
// config file, a .env file, environment variables, and explicitly set CLI
// flags. Environment variables map onto nested keys by underscores:
//
//	HTTP_TIMEOUT=5s      -> http.timeout
//	LOGGING_LEVEL=debug  -> logging.level
//	OUTPUT_FORMAT=yaml   -> output.format
//
// # Usage
//
//	cfg, err := config.Load("gdocstojson", config.WithFlags(fs, flagKeys))
package config
