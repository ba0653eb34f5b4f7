// Package client is the transport layer between the Devraha CLI and the
// REST API.
//
// # Overview
//
// The Client interface lists one method per API endpoint; every method takes
// a models.Kind that selects the user or admin family of routes. HTTPClient
// implements it over net/http with a fixed base URL and a cookie jar, so the
// session cookie the API sets on login rides along on every later request.
//
// # Error Handling
//
// Non-2xx answers become *APIError carrying the server's message. Transport
// failures wrap ErrUnavailable. 401 and 403 answers also match
// ErrUnauthorized through errors.Is.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. There is no client-side timeout and
// no retry; callers cancel through the context.
package client
