// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until the context is cancelled or the process receives
// SIGINT/SIGTERM, then drains in-flight requests within the configured
// shutdown timeout.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
