// Package logger wraps zerolog with a small configuration struct and a
// process-wide logger used by library packages.
//
// The global logger discards everything until Init is called, so packages
// such as di can log freely without polluting test or console output.
package logger
