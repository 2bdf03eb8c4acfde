// Package httpserver runs an http.Server with graceful shutdown.
//
// Run blocks until the context is cancelled, the process receives SIGINT or
// SIGTERM, or Shutdown is called. In-flight requests get the configured
// shutdown timeout to finish.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, handler); err != nil {
//		return err
//	}
//
// Start failures wrap ErrStart and shutdown failures wrap ErrShutdown.
package httpserver
