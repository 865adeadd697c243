// Package server holds the static file server, its configuration and the
// port availability probe.
//
// The server is a Fiber app with a single static route rooted at one
// directory. Directory listings are enabled, nothing is compressed and no
// access log is written. Every response carries an X-Ray-ID header from the
// rayid middleware; only 5xx errors reach the logger.
//
// # Lifecycle
//
//	srv := server.New(cfg, root, logger)
//	if err := srv.Listen(); err != nil { ... } // bind ":<port>"
//	err := srv.Serve(ctx)                      // blocks until ctx is cancelled
//
// Probe binds the loopback address and releases it straight away. The result
// is only a hint: the port can be taken between Probe and Listen.
package server
