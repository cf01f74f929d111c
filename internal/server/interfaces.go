package server

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until shutdown is requested by a signal or by Shutdown.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
