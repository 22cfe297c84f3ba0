// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, and
// access logging are handled in this package before requests are delegated to
// the service layer. Every response is a JSON envelope with a human-readable
// message, an optional data payload, and an optional list of per-field
// validation failures.
package http
