package server

// Server owns the HTTP and gRPC listeners of one process.
type Server interface {
	// RunServer blocks until a termination signal arrives or a listener
	// fails, then shuts everything down.
	RunServer()

	// Shutdown stops gRPC first, then drains HTTP.
	Shutdown()
}
