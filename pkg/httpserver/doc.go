// Package httpserver provides a lightweight wrapper around net/http with
// graceful shutdown, configurable timeouts, and structured logging via slog.
//
// Run blocks until the context is cancelled or an interrupt/TERM signal is
// received, then shuts the server down using http.Server.Shutdown with a
// configurable deadline. Construction goes through New or NewFromConfig with
// Option helpers such as WithAddr and WithLogger.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithShutdownTimeout(10*time.Second),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run wraps listen errors with ErrStart; Shutdown wraps underlying shutdown
// errors with ErrShutdown. Use errors.Is to distinguish them.
package httpserver
