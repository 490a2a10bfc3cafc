// Package logger provides structured logging on top of zerolog.
//
// It supports JSON and console output, level configuration, and component-scoped
// loggers with structured fields.
//
// # Configuration
//
//	log:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(logger.Config{Level: "debug"}, "gdax-trades")
//	log.WithComponent("history").Info("page fetched", logger.Fields("trades", 100))
package logger
