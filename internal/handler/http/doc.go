// Package http implements the REST transport of the vault service.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, response compression and bearer authentication are handled
// here before requests reach the service layer. Service errors are mapped to
// HTTP statuses through a single table in errors_mapper.go.
package http
