// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber app from this Config: the listen port, the API key
// enforced by the auth middleware and the body limit that bounds uploaded ledgers and
// statements.
package server
