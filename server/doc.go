// Package server exposes converted spreadsheet feeds over HTTP using Gin,
// served over HTTP/1.1 and h2c.
//
// # Routes
//
//   - GET /feed?url=<document url>: {"data": [records]}
//   - GET /health: liveness
//   - GET /version: build information
//
// Errors are AppError JSON bodies. A malformed document URL is a 400
// INVALID_FORMAT, a feed with an unexpected shape is a 502 UNEXPECTED_SHAPE,
// and any upstream HTTP failure is a 502 EXTERNAL_SERVICE_ERROR.
//
// # Middleware
//
// Built-in middleware (server/middleware), applied around every route:
//
//   - Recovery: Panic recovery with structured logging
//   - RequestID: Request ID generation and propagation
//   - CORS: Cross-origin access for browser dashboards
//   - RequestLogger: Request logging with duration tracking
package server
