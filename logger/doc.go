// Package logger provides structured logging for seqkit tools using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.New(&cfg, "seqctl").WithComponent("union")
//	log.Debug("operation applied", logger.Fields("input_len", 3))
package logger
