// Package errors provides the structured application error shared by the
// sheetfeed packages. Errors carry a machine-readable code, a human-readable
// message, a recommended HTTP status and optional details, and convert to an
// RFC 7807 style JSON body for the server.
package errors
