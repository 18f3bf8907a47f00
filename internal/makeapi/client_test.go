package makeapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a real client at a test server.
func newTestClient(t *testing.T, handler http.Handler) (Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := NewClient(Config{
		Token:   "test-token",
		BaseURL: ts.URL,
	})
	require.NoError(t, err)
	return client, ts
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:   "valid config",
			config: Config{Token: "t", Zone: "eu1"},
		},
		{
			name:   "defaults zone",
			config: Config{Token: "t"},
		},
		{
			name:        "missing token",
			config:      Config{Zone: "eu1"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.config)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestNewClient_ZoneBaseURL(t *testing.T) {
	c, err := NewClient(Config{Token: "t", Zone: "us1"})
	require.NoError(t, err)

	ac := c.(*apiClient)
	assert.Equal(t, "https://us1.make.com/api/v2", ac.baseURL)
}

func TestClient_AuthorizationHeader(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"scenarios":[]}`))
	}))

	_, err := client.ListScenarios(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Token test-token", gotAuth)
}

func TestClient_QueryEncoding(t *testing.T) {
	tests := []struct {
		name string
		opts *ListScenariosOptions
		want map[string][]string
		omit []string
	}{
		{
			name: "no options",
			opts: nil,
			omit: []string{"teamId", "pg[offset]", "pg[limit]"},
		},
		{
			name: "absent pagination fields omitted",
			opts: &ListScenariosOptions{
				TeamID: Int64(7),
			},
			want: map[string][]string{"teamId": {"7"}},
			omit: []string{"pg[offset]", "pg[limit]", "pg[sortBy]", "pg[sortDir]"},
		},
		{
			name: "explicit zero offset is preserved",
			opts: &ListScenariosOptions{
				Pagination: &Pagination{Offset: Int(0), Limit: Int(10)},
			},
			want: map[string][]string{
				"pg[offset]": {"0"},
				"pg[limit]":  {"10"},
			},
		},
		{
			name: "explicit empty sortBy is preserved",
			opts: &ListScenariosOptions{
				Pagination: &Pagination{SortBy: String("")},
			},
			want: map[string][]string{"pg[sortBy]": {""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string][]string
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.URL.Query()
				w.Write([]byte(`{"scenarios":[]}`))
			}))

			_, err := client.ListScenarios(context.Background(), tt.opts)
			require.NoError(t, err)

			for key, want := range tt.want {
				assert.Equal(t, want, got[key], "query key %s", key)
			}
			for _, key := range tt.omit {
				_, present := got[key]
				assert.False(t, present, "query key %s should be omitted", key)
			}
		})
	}
}

func TestClient_APIErrorWithJSONMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Scenario not found"}`))
	}))

	_, err := client.GetScenario(context.Background(), 999)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "error is %T, want *APIError", err)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Scenario not found", apiErr.Message)
	assert.Contains(t, apiErr.Error(), "404")
	assert.Contains(t, apiErr.Error(), "Scenario not found")
}

func TestClient_APIErrorWithDetailField(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Invalid blueprint"}`))
	}))

	_, err := client.GetScenario(context.Background(), 1)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "Invalid blueprint", apiErr.Message)
}

func TestClient_APIErrorNonJSONBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>Bad Gateway</html>"))
	}))

	_, err := client.GetScenario(context.Background(), 1)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "error is %T, want *APIError", err)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message, "non-JSON body must not attach a detail")
	assert.Contains(t, apiErr.Error(), "502")
}

func TestClient_RunScenario(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody []byte
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"executionId":"abc123","status":"success"}`))
	}))

	run, err := client.RunScenario(context.Background(), 42, &RunScenarioRequest{
		Data: map[string]interface{}{"input": "value"},
	})
	require.NoError(t, err)

	assert.Equal(t, "POST", gotMethod)
	assert.Equal(t, "/scenarios/42/run", gotPath)
	assert.Equal(t, "abc123", run.ExecutionID)
	assert.Equal(t, "success", run.Status)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(gotBody, &body))
	assert.Equal(t, map[string]interface{}{"input": "value"}, body["data"])
}

func TestClient_RunScenarioNoBody(t *testing.T) {
	var gotLength int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLength = r.ContentLength
		w.Write([]byte(`{"executionId":"x"}`))
	}))

	_, err := client.RunScenario(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Zero(t, gotLength, "nil request must not send a body")
}
