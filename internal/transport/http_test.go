package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPTransportConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *HTTPTransportConfig
		wantErr bool
	}{
		{
			name:    "empty config",
			config:  &HTTPTransportConfig{},
			wantErr: false,
		},
		{
			name: "valid timeout",
			config: &HTTPTransportConfig{
				Timeout: 10 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "negative timeout",
			config: &HTTPTransportConfig{
				Timeout: -1 * time.Second,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHTTPTransport_Execute(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Test") != "yes" {
			t.Errorf("expected X-Test header to be forwarded")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	tr, err := NewHTTPTransport(nil)
	if err != nil {
		t.Fatalf("NewHTTPTransport() failed: %v", err)
	}

	resp, err := tr.Execute(context.Background(), &Request{
		Method:  "GET",
		URL:     ts.URL,
		Headers: map[string]string{"X-Test": "yes"},
	})
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}
	if string(resp.Body) != `{"ok":true}` {
		t.Errorf("Body = %q", resp.Body)
	}
}

func TestHTTPTransport_NonSuccessStatusIsNotAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not found"}`))
	}))
	defer ts.Close()

	tr, err := NewHTTPTransport(nil)
	if err != nil {
		t.Fatalf("NewHTTPTransport() failed: %v", err)
	}

	resp, err := tr.Execute(context.Background(), &Request{Method: "GET", URL: ts.URL})
	if err != nil {
		t.Fatalf("Execute() returned error for 404: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", resp.StatusCode)
	}
	if string(resp.Body) != `{"message":"not found"}` {
		t.Errorf("Body = %q", resp.Body)
	}
}

func TestHTTPTransport_DefaultHeadersAndContentType(t *testing.T) {
	var gotContentType, gotAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	tr, err := NewHTTPTransport(&HTTPTransportConfig{
		Headers: map[string]string{"User-Agent": "makebridge-test/1.0"},
	})
	if err != nil {
		t.Fatalf("NewHTTPTransport() failed: %v", err)
	}

	_, err = tr.Execute(context.Background(), &Request{
		Method: "POST",
		URL:    ts.URL,
		Body:   []byte(`{}`),
	})
	if err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotAgent != "makebridge-test/1.0" {
		t.Errorf("User-Agent = %q, want makebridge-test/1.0", gotAgent)
	}
}

func TestHTTPTransport_InvalidRequest(t *testing.T) {
	tr, err := NewHTTPTransport(nil)
	if err != nil {
		t.Fatalf("NewHTTPTransport() failed: %v", err)
	}

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing method", &Request{URL: "https://example.com"}},
		{"invalid method", &Request{Method: "FETCH", URL: "https://example.com"}},
		{"missing URL", &Request{Method: "GET"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tr.Execute(context.Background(), tt.req)
			if err == nil {
				t.Fatal("expected error")
			}
			terr, ok := err.(*TransportError)
			if !ok {
				t.Fatalf("error is %T, want *TransportError", err)
			}
			if !terr.IsType(ErrorTypeInvalidReq) {
				t.Errorf("error type = %s, want %s", terr.Type, ErrorTypeInvalidReq)
			}
		})
	}
}

func TestHTTPTransport_ConnectionError(t *testing.T) {
	tr, err := NewHTTPTransport(nil)
	if err != nil {
		t.Fatalf("NewHTTPTransport() failed: %v", err)
	}

	// Port 1 should refuse connections
	_, err = tr.Execute(context.Background(), &Request{
		Method: "GET",
		URL:    "http://127.0.0.1:1/",
	})
	if err == nil {
		t.Fatal("expected connection error")
	}
	if _, ok := err.(*TransportError); !ok {
		t.Fatalf("error is %T, want *TransportError", err)
	}
}

func TestHTTPTransport_RateLimiterCancelled(t *testing.T) {
	tr, err := NewHTTPTransport(nil)
	if err != nil {
		t.Fatalf("NewHTTPTransport() failed: %v", err)
	}

	// A limiter with zero burst never admits a request; expect the wait
	// to surface the context cancellation.
	tr.SetRateLimiter(NewTokenBucketLimiter(1, 0))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = tr.Execute(ctx, &Request{Method: "GET", URL: "https://example.com"})
	if err == nil {
		t.Fatal("expected error")
	}
	terr, ok := err.(*TransportError)
	if !ok {
		t.Fatalf("error is %T, want *TransportError", err)
	}
	if !terr.IsType(ErrorTypeCancelled) {
		t.Errorf("error type = %s, want %s", terr.Type, ErrorTypeCancelled)
	}
}
