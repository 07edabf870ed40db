// Package server runs the application's HTTP transport: startup, signal
// handling, and graceful shutdown.
package server
