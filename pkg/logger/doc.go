// Package logger builds *slog.Logger values with functional options and
// provides attribute constructors with consistent keys for database
// operations.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("development", "reservations"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
//	log.DebugContext(ctx, "operation finished",
//		logger.Collection("reservations"),
//		logger.Operation("find"),
//		logger.Count(3),
//		logger.Duration(time.Since(start)),
//	)
//
// Extractors registered with WithContextValue or WithContextExtractors run on
// every record, so values stored in the context at call time are logged.
//
// Error and DocumentID return an empty attribute for nil input, which slog
// omits, so they can be passed unconditionally.
package logger
