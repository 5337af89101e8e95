package server

// Server is the lifecycle contract of the container API server.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives and
	// the graceful shutdown finishes.
	RunServer()

	// Shutdown stops accepting requests and drains the ones in flight.
	Shutdown()
}
