// Package logger builds *slog.Logger values for the numwords binaries.
//
// New takes functional options that pick the output format and level, attach
// static attributes and register ContextExtractor callbacks. Extractors run
// on every record, so request scoped values such as the request id reach the
// log line without being passed by hand.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "numwords"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "converted",
//		logger.Number(1201),
//		logger.Style("indian"),
//		logger.Duration(time.Since(start)),
//	)
//
// ParseLevel and ParseFormat turn configuration strings into option values.
//
// The helpers in attr.go keep attribute keys consistent. Error and Errors
// return an empty attribute for nil errors, so they can be passed without a
// nil check.
package logger
