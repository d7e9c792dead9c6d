// Package server holds the HTTP server configuration and the Fiber application setup.
//
// # Configuration
//
// The Config struct defines the bind host, the port (5001 by default) and the
// debug flag. Debug is on by default, matching how the visualiser is run during
// development: templates are re-read on every request.
//
// # Application
//
// NewApp builds the Fiber app shared by every feature. It installs, in order:
//   - the rayid middleware
//   - request logging through zap
//   - GET /health
//   - an error handler that logs failures and answers with the status of *fiber.Error values
//
// Features then register their routes through core/loader.
package server
