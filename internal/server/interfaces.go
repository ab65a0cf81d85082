package server

// Server defines the lifecycle of the API process.
//
// RunServer blocks until a stop signal arrives and everything has shut down.
// Shutdown can be called to stop the server from another goroutine.
type Server interface {
	RunServer()
	Shutdown()
}
