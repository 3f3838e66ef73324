// Package config loads the application configuration.
//
// Defaults are embedded in the binary and read through viper; callers may
// merge an override document on top. Nothing is read from the environment
// or from disk.
package config
