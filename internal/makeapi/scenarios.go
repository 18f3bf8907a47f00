package makeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// ListScenariosOptions filters and pages the scenario listing.
type ListScenariosOptions struct {
	TeamID         *int64
	OrganizationID *int64
	FolderID       *int64
	Pagination     *Pagination
}

// CreateScenarioRequest carries the body for scenario creation.
// Blueprint and Scheduling are JSON strings passed through opaquely;
// the platform owns their validation.
type CreateScenarioRequest struct {
	Blueprint  string `json:"blueprint"`
	TeamID     int64  `json:"teamId"`
	Scheduling string `json:"scheduling,omitempty"`
	FolderID   *int64 `json:"folderId,omitempty"`
	BasedOn    *int64 `json:"basedon,omitempty"`
}

// UpdateScenarioRequest carries the body for scenario modification.
// Only non-empty fields are sent.
type UpdateScenarioRequest struct {
	Name       string `json:"name,omitempty"`
	Blueprint  string `json:"blueprint,omitempty"`
	Scheduling string `json:"scheduling,omitempty"`
	FolderID   *int64 `json:"folderId,omitempty"`
}

// RunScenarioRequest carries optional input data for a scenario run.
type RunScenarioRequest struct {
	Data       map[string]interface{} `json:"data,omitempty"`
	Responsive *bool                  `json:"responsive,omitempty"`
}

// CloneScenarioRequest carries the body for scenario cloning.
type CloneScenarioRequest struct {
	Name   string `json:"name"`
	TeamID *int64 `json:"teamId,omitempty"`
}

type scenarioListEnvelope struct {
	Scenarios []Scenario `json:"scenarios"`
}

type scenarioEnvelope struct {
	Scenario Scenario `json:"scenario"`
}

// ListScenarios returns scenarios visible to the token, optionally scoped
// to a team, organization, or folder.
func (c *apiClient) ListScenarios(ctx context.Context, opts *ListScenariosOptions) ([]Scenario, error) {
	q := url.Values{}
	if opts != nil {
		addInt64(q, "teamId", opts.TeamID)
		addInt64(q, "organizationId", opts.OrganizationID)
		addInt64(q, "folderId", opts.FolderID)
		opts.Pagination.apply(q)
	}

	var env scenarioListEnvelope
	if err := c.do(ctx, "GET", "/scenarios", nil, q, &env); err != nil {
		return nil, err
	}
	return env.Scenarios, nil
}

// GetScenario fetches a single scenario by id.
func (c *apiClient) GetScenario(ctx context.Context, scenarioID int64) (*Scenario, error) {
	var env scenarioEnvelope
	if err := c.do(ctx, "GET", fmt.Sprintf("/scenarios/%d", scenarioID), nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Scenario, nil
}

// CreateScenario creates a scenario from a blueprint. The API requires an
// explicit confirmation flag for this mutation.
func (c *apiClient) CreateScenario(ctx context.Context, req *CreateScenarioRequest) (*Scenario, error) {
	q := url.Values{}
	q.Set("confirmed", "true")

	var env scenarioEnvelope
	if err := c.do(ctx, "POST", "/scenarios", req, q, &env); err != nil {
		return nil, err
	}
	return &env.Scenario, nil
}

// UpdateScenario modifies a scenario. The API requires an explicit
// confirmation flag for this mutation.
func (c *apiClient) UpdateScenario(ctx context.Context, scenarioID int64, req *UpdateScenarioRequest) (*Scenario, error) {
	q := url.Values{}
	q.Set("confirmed", "true")

	var env scenarioEnvelope
	if err := c.do(ctx, "PATCH", fmt.Sprintf("/scenarios/%d", scenarioID), req, q, &env); err != nil {
		return nil, err
	}
	return &env.Scenario, nil
}

// DeleteScenario removes a scenario.
func (c *apiClient) DeleteScenario(ctx context.Context, scenarioID int64) error {
	return c.do(ctx, "DELETE", fmt.Sprintf("/scenarios/%d", scenarioID), nil, nil, nil)
}

// ActivateScenario starts scheduled execution of a scenario.
func (c *apiClient) ActivateScenario(ctx context.Context, scenarioID int64) (*Scenario, error) {
	var env scenarioEnvelope
	if err := c.do(ctx, "POST", fmt.Sprintf("/scenarios/%d/start", scenarioID), nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Scenario, nil
}

// DeactivateScenario stops scheduled execution of a scenario.
func (c *apiClient) DeactivateScenario(ctx context.Context, scenarioID int64) (*Scenario, error) {
	var env scenarioEnvelope
	if err := c.do(ctx, "POST", fmt.Sprintf("/scenarios/%d/stop", scenarioID), nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.Scenario, nil
}

// RunScenario triggers one execution of a scenario with optional input data.
func (c *apiClient) RunScenario(ctx context.Context, scenarioID int64, req *RunScenarioRequest) (*RunResponse, error) {
	var out RunResponse
	var body interface{}
	if req != nil {
		body = req
	}
	if err := c.do(ctx, "POST", fmt.Sprintf("/scenarios/%d/run", scenarioID), body, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CloneScenario duplicates a scenario, optionally into another team. The
// API requires an explicit confirmation flag for this mutation.
func (c *apiClient) CloneScenario(ctx context.Context, scenarioID int64, req *CloneScenarioRequest) (*Scenario, error) {
	q := url.Values{}
	q.Set("confirmed", "true")

	var env scenarioEnvelope
	if err := c.do(ctx, "POST", fmt.Sprintf("/scenarios/%d/clone", scenarioID), req, q, &env); err != nil {
		return nil, err
	}
	return &env.Scenario, nil
}

// GetScenarioBlueprint fetches a scenario's blueprint and scheduling.
func (c *apiClient) GetScenarioBlueprint(ctx context.Context, scenarioID int64) (*BlueprintResponse, error) {
	var env struct {
		Response json.RawMessage `json:"response"`
	}
	if err := c.do(ctx, "GET", fmt.Sprintf("/scenarios/%d/blueprint", scenarioID), nil, nil, &env); err != nil {
		return nil, err
	}

	var out BlueprintResponse
	if len(env.Response) > 0 {
		if err := json.Unmarshal(env.Response, &out); err != nil {
			return nil, fmt.Errorf("makeapi: decoding blueprint: %w", err)
		}
	}
	return &out, nil
}

// GetScenarioLogs returns execution log entries for a scenario.
func (c *apiClient) GetScenarioLogs(ctx context.Context, scenarioID int64, pg *Pagination) ([]ScenarioLog, error) {
	q := url.Values{}
	pg.apply(q)

	var env struct {
		ScenarioLogs []ScenarioLog `json:"scenarioLogs"`
	}
	if err := c.do(ctx, "GET", fmt.Sprintf("/scenarios/%d/logs", scenarioID), nil, q, &env); err != nil {
		return nil, err
	}
	return env.ScenarioLogs, nil
}
