package server

// Server is the lifecycle contract for the content gateway's transport
// server. [RunServer] blocks until a stop signal arrives or the listener
// fails; [Shutdown] drains in-flight requests before returning.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
