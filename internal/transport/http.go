package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// HTTPTransport implements the Transport interface for HTTP/HTTPS requests.
// Supports configurable timeouts, TLS settings, and default headers.
type HTTPTransport struct {
	config      *HTTPTransportConfig
	client      *http.Client
	rateLimiter RateLimiter
}

// HTTPTransportConfig configures the HTTP transport.
type HTTPTransportConfig struct {
	// Timeout is the request timeout (default: 30s)
	Timeout time.Duration

	// Headers are default headers applied to all requests
	Headers map[string]string

	// TLSInsecure disables TLS certificate validation (default: false)
	// WARNING: Only use for development/testing
	TLSInsecure bool
}

// Validate checks if the configuration is valid.
func (c *HTTPTransportConfig) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative, got %v", c.Timeout)
	}
	return nil
}

// NewHTTPTransport creates a new HTTP transport with the given configuration.
// A nil config uses defaults.
func NewHTTPTransport(config *HTTPTransportConfig) (*HTTPTransport, error) {
	if config == nil {
		config = &HTTPTransportConfig{}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	client := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			// Connection pool settings
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,

			// Timeouts
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: timeout,
			ExpectContinueTimeout: 1 * time.Second,

			// TLS configuration
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: config.TLSInsecure,
			},
		},
	}

	return &HTTPTransport{
		config: config,
		client: client,
	}, nil
}

// Name returns "http".
func (t *HTTPTransport) Name() string {
	return "http"
}

// SetRateLimiter configures rate limiting for this transport.
func (t *HTTPTransport) SetRateLimiter(limiter RateLimiter) {
	t.rateLimiter = limiter
}

// Execute sends an HTTP request and returns the response.
// Any HTTP status counts as success at this layer; only delivery
// failures produce an error.
func (t *HTTPTransport) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := t.validateRequest(req); err != nil {
		return nil, &TransportError{
			Type:    ErrorTypeInvalidReq,
			Message: fmt.Sprintf("invalid request: %s", err.Error()),
			Cause:   err,
		}
	}

	if t.rateLimiter != nil {
		if err := t.rateLimiter.Wait(ctx); err != nil {
			return nil, &TransportError{
				Type:    ErrorTypeCancelled,
				Message: "rate limit wait cancelled",
				Cause:   err,
			}
		}
	}

	httpReq, err := t.buildHTTPRequest(ctx, req)
	if err != nil {
		return nil, &TransportError{
			Type:    ErrorTypeInvalidReq,
			Message: fmt.Sprintf("failed to build HTTP request: %s", err.Error()),
			Cause:   err,
		}
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, classifyHTTPError(err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{
			Type:    ErrorTypeConnection,
			Message: fmt.Sprintf("failed to read response body: %s", err.Error()),
			Cause:   err,
		}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

// validateRequest checks if the request is valid.
func (t *HTTPTransport) validateRequest(req *Request) error {
	if req.Method == "" {
		return fmt.Errorf("method is required")
	}

	validMethods := map[string]bool{
		"GET": true, "POST": true, "PUT": true, "DELETE": true, "PATCH": true,
	}
	if !validMethods[req.Method] {
		return fmt.Errorf("invalid HTTP method: %q", req.Method)
	}

	if req.URL == "" {
		return fmt.Errorf("URL is required")
	}

	if _, err := url.Parse(req.URL); err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	return nil
}

// buildHTTPRequest constructs an http.Request from a transport Request.
func (t *HTTPTransport) buildHTTPRequest(ctx context.Context, req *Request) (*http.Request, error) {
	var bodyReader io.Reader
	if req.Body != nil {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bodyReader)
	if err != nil {
		return nil, err
	}

	// Apply default headers from config
	for key, value := range t.config.Headers {
		httpReq.Header.Set(key, value)
	}

	// Apply request headers (override defaults)
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	// Set Content-Type if body is present and not already set
	if req.Body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	return httpReq, nil
}

// classifyHTTPError classifies HTTP client errors into TransportError types.
func classifyHTTPError(err error) *TransportError {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{
			Type:    ErrorTypeCancelled,
			Message: "request cancelled",
			Cause:   err,
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TransportError{
			Type:    ErrorTypeTimeout,
			Message: "request timeout",
			Cause:   err,
		}
	}

	return &TransportError{
		Type:    ErrorTypeConnection,
		Message: fmt.Sprintf("HTTP error: %s", err.Error()),
		Cause:   err,
	}
}
