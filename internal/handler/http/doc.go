// Package http implements the self-hosted container API.
//
// It exposes route wiring, request handlers, and middleware. Bearer
// authentication, request tracing, access logging and response compression
// are handled here before requests are delegated to the service layer.
package http
