// Package logger provides structured logging built on zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.New(&cfg, "gdocstojson").WithComponent("httpclient")
//	log.Debug("request sent", logger.Fields("url", u))
package logger
