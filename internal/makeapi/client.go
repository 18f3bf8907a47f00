// Package makeapi implements a typed client for the Make platform REST API
// (v2). Every method issues exactly one HTTP request and either decodes the
// JSON response into the caller's expected shape or returns an APIError for
// a non-success status. The client is stateless: it holds only immutable
// configuration for its lifetime, so concurrent use needs no coordination.
package makeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/makebridge/makebridge/internal/transport"
)

// DefaultZone is the region used when no zone is configured.
const DefaultZone = "eu2"

// Config configures the Make API client.
type Config struct {
	// Token is the API token (required)
	Token string

	// Zone selects the regional API endpoint (e.g., "eu1", "eu2", "us1").
	// Defaults to DefaultZone.
	Zone string

	// BaseURL overrides the zone-derived base URL. Used by tests and
	// self-hosted installations.
	BaseURL string

	// Transport executes HTTP requests. Defaults to an HTTPTransport
	// with standard settings.
	Transport transport.Transport
}

// Client is the surface the tool dispatcher depends on. Keeping it an
// interface lets tests substitute a double for the remote API.
type Client interface {
	ListScenarios(ctx context.Context, opts *ListScenariosOptions) ([]Scenario, error)
	GetScenario(ctx context.Context, scenarioID int64) (*Scenario, error)
	CreateScenario(ctx context.Context, req *CreateScenarioRequest) (*Scenario, error)
	UpdateScenario(ctx context.Context, scenarioID int64, req *UpdateScenarioRequest) (*Scenario, error)
	DeleteScenario(ctx context.Context, scenarioID int64) error
	ActivateScenario(ctx context.Context, scenarioID int64) (*Scenario, error)
	DeactivateScenario(ctx context.Context, scenarioID int64) (*Scenario, error)
	RunScenario(ctx context.Context, scenarioID int64, req *RunScenarioRequest) (*RunResponse, error)
	CloneScenario(ctx context.Context, scenarioID int64, req *CloneScenarioRequest) (*Scenario, error)
	GetScenarioBlueprint(ctx context.Context, scenarioID int64) (*BlueprintResponse, error)
	GetScenarioLogs(ctx context.Context, scenarioID int64, pg *Pagination) ([]ScenarioLog, error)

	ListConnections(ctx context.Context, teamID *int64, pg *Pagination) ([]Connection, error)
	ListHooks(ctx context.Context, teamID *int64, pg *Pagination) ([]Hook, error)

	ListDataStores(ctx context.Context, teamID *int64, pg *Pagination) ([]DataStore, error)
	GetDataStore(ctx context.Context, dataStoreID int64) (*DataStore, error)
	CreateDataStore(ctx context.Context, req *CreateDataStoreRequest) (*DataStore, error)
	DeleteDataStore(ctx context.Context, dataStoreID int64) error
	ListDataStoreRecords(ctx context.Context, dataStoreID int64, pg *Pagination) ([]DataStoreRecord, error)
	CreateDataStoreRecord(ctx context.Context, dataStoreID int64, req *CreateDataStoreRecordRequest) (*DataStoreRecord, error)

	ListTeams(ctx context.Context, organizationID *int64, pg *Pagination) ([]Team, error)
	ListOrganizations(ctx context.Context, pg *Pagination) ([]Organization, error)
	GetCurrentUser(ctx context.Context) (*User, error)
}

// apiClient is the production Client implementation.
type apiClient struct {
	baseURL   string
	token     string
	transport transport.Transport
}

// NewClient creates a Make API client from the given configuration.
func NewClient(config Config) (Client, error) {
	if config.Token == "" {
		return nil, fmt.Errorf("makeapi: API token is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		zone := config.Zone
		if zone == "" {
			zone = DefaultZone
		}
		baseURL = fmt.Sprintf("https://%s.make.com/api/v2", zone)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	tr := config.Transport
	if tr == nil {
		var err error
		tr, err = transport.NewHTTPTransport(nil)
		if err != nil {
			return nil, fmt.Errorf("makeapi: creating transport: %w", err)
		}
	}

	return &apiClient{
		baseURL:   baseURL,
		token:     config.Token,
		transport: tr,
	}, nil
}

// do issues one request against the API. A non-nil body is JSON-encoded,
// query parameters are appended when present, and the response body is
// decoded into out when out is non-nil. Non-2xx statuses become APIError.
func (c *apiClient) do(ctx context.Context, method, path string, body interface{}, query url.Values, out interface{}) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("makeapi: encoding request body: %w", err)
		}
	}

	req := &transport.Request{
		Method: method,
		URL:    fullURL,
		Headers: map[string]string{
			"Authorization": "Token " + c.token,
			"Accept":        "application/json",
		},
		Body: encoded,
	}

	resp, err := c.transport.Execute(ctx, req)
	if err != nil {
		return err
	}

	if err := parseAPIError(resp); err != nil {
		return err
	}

	if out != nil && len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, out); err != nil {
			return fmt.Errorf("makeapi: decoding response: %w", err)
		}
	}

	return nil
}
