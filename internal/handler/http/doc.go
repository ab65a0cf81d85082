// Package http implements the REST transport of the tax jurisdiction API.
//
// It exposes route wiring, request handlers and middleware. Authentication,
// role checks, rate limiting, request tracing, access logging, metrics and
// response compression are handled here before requests are delegated to
// the service layer. Every failure is answered with a JSON {"error": "..."}
// body.
package http
