// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production).
//
// # Run Correlation
//
// Every invocation of the importer is tagged with a run id (a UUID generated
// by the import command). The WithRunID helper attaches that id to the log
// entry, ensuring that all logs belonging to one import run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("import started")
//
//	l := logger.WithRunID(log, runID)
//	l.Error("batch failed", zap.Error(err))
package logger
