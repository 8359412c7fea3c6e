// Package transport provides an HTTP implementation of the domain.Transport
// interface used to reach a node's REST API.
//
// Requests and responses are JSON. Bodies are encoded from wire values and
// responses are decoded back into wire values with json.Number preserved, so
// 64-bit halves survive untouched until the DTO schemas read them.
//
// Every request carries a fresh X-Request-ID and accepts a context for
// cancellation and deadlines. Non-2xx statuses are returned as *StatusError
// with the HTTP method, full URL, status and the node's error body when it
// sent one.
package transport
