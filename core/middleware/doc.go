// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: request id generation, stored in the Fiber locals and echoed in X-Ray-ID.
//
// rayid is registered first so that every log line, including auth rejections, carries the
// request id.
package middleware
