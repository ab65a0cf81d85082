// Package server runs the HTTP listener and the background workers of the
// API, and shuts both down gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
