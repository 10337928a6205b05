// Package logger provides structured logging based on Zap.
//
// The reconciler logs one line per processed request or CLI run with the file names, row
// counts and pending totals. Row contents are never logged.
//
// # Request Correlation
//
// The rayid middleware stores a request id under RayIDKey in the Fiber locals. WithRayID
// attaches it to a logger so every line written while serving the request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (default) or console
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	l := logger.WithRayID(log, c)
//	l.Error("Reconciliation failed", zap.Error(err))
package logger
