// Package logger provides slog logger factories for the library and its
// consumers.
//
// Three flavors cover the usual deployments:
//
//	log := logger.New()            // JSON to stdout, Info level
//	log := logger.NewDevelopment() // colorized tint output, Debug level
//	log := logger.NewNope()        // discards everything
//
// NewWithSentry adds a Sentry handler next to stdout when a DSN is
// configured, degrading gracefully to stdout-only otherwise:
//
//	log := logger.NewWithSentry(logger.SentryConfig{DSN: dsn})
//
// Errors create Issues in Sentry while warnings are stored as searchable
// logs. If the DSN is empty or Sentry initialization fails, logging
// continues to stdout without disruption, making the same code path safe
// in development and production.
package logger
