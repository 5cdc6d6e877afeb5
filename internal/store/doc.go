// Package store defines the persistence interfaces for the application's
// entities along with the error taxonomy shared by all implementations.
// Concrete implementations live under internal/platform.
package store
