// Package transport provides protocol-level HTTP execution for the Make API
// client.
//
// The transport layer separates wire concerns (connection pooling, TLS,
// timeouts, rate limiting, network error classification) from client-level
// concerns (URL construction, authentication headers, response decoding).
// Non-success HTTP statuses are not transport errors: the transport returns
// the response as-is and leaves status handling to the caller.
package transport

import (
	"context"
)

// Transport executes a single request and returns the remote response.
// Implementations return TransportError when the request cannot be
// delivered; an HTTP response with any status code is a successful
// transport exchange.
type Transport interface {
	// Execute sends a request and returns a response.
	// The context controls cancellation and deadlines.
	Execute(ctx context.Context, req *Request) (*Response, error)

	// Name returns the transport identifier (e.g., "http").
	Name() string

	// SetRateLimiter configures rate limiting for this transport.
	// Rate limiting occurs before request execution.
	SetRateLimiter(limiter RateLimiter)
}

// Request represents a transport-agnostic request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE, PATCH)
	// Required, must be non-empty
	Method string

	// URL is the full request URL
	// Required, must be valid per RFC 3986
	URL string

	// Headers are request headers (case-insensitive)
	// Optional, may be nil or empty map
	Headers map[string]string

	// Body is the request body
	// Optional, may be nil or empty slice
	Body []byte
}

// Response represents a transport-agnostic response.
type Response struct {
	// StatusCode is the HTTP status code
	StatusCode int

	// Status is the HTTP status line text (e.g., "404 Not Found")
	Status string

	// Headers contains response headers
	Headers map[string][]string

	// Body is the response body
	Body []byte
}

// RateLimiter paces transport requests.
// Implementations should block until a request is allowed.
type RateLimiter interface {
	// Wait blocks until a request is allowed under the rate limit.
	// Returns an error if the context is cancelled before the request can proceed.
	Wait(ctx context.Context) error
}
