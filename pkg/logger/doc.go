// Package logger builds slog loggers with functional options and injects
// request scoped values, such as the request id, into every record.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "passcheck"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "feedback rendered", logger.Lang("fa"))
package logger
