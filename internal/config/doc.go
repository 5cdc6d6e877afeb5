// Package config loads and validates the application configuration from
// environment variables and an optional config file. All values are read
// once at startup; there is no runtime reload.
package config
