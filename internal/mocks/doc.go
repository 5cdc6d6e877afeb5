// Package mocks provides hand-written test doubles for the application's
// service and store interfaces. Each mock supports per-test behavior
// overrides through function fields plus call tracking for verifying that
// short-circuited requests never reach the store.
package mocks
