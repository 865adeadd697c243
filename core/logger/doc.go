// Package logger provides a structured logging facility based on Zap.
//
// The launcher talks to the operator through plain status lines on stdout;
// everything meant for diagnosis goes through the zap logger built here,
// which writes to stderr.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (default for the CLI) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started", zap.Int("port", 8000))
//
// Inside a Fiber handler, WithRayID attaches the request id assigned by the
// rayid middleware so error logs can be matched to the X-Ray-ID header.
package logger
