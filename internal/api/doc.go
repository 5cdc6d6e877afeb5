// Package api implements the HTTP route handlers for the application.
// Handlers validate their inputs, perform a single store operation, and map
// the store's outcome to a response. Expected failures (malformed input,
// missing records, conflicts) are handled here; only truly unexpected
// failures propagate to the recovery boundary.
package api
