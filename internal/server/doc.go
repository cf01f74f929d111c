// Package server runs the HTTP API with signal handling and graceful
// shutdown.
package server
