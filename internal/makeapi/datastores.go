package makeapi

import (
	"context"
	"fmt"
	"net/url"
)

// CreateDataStoreRequest carries the body for data store creation.
type CreateDataStoreRequest struct {
	Name            string `json:"name"`
	TeamID          int64  `json:"teamId"`
	DatastructureID *int64 `json:"datastructureId,omitempty"`
	MaxSizeMB       *int   `json:"maxSizeMB,omitempty"`
}

// CreateDataStoreRecordRequest carries the body for record creation.
// Key is optional; the platform generates one when absent.
type CreateDataStoreRecordRequest struct {
	Key  string                 `json:"key,omitempty"`
	Data map[string]interface{} `json:"data"`
}

// ListDataStores returns data stores, optionally scoped to a team.
func (c *apiClient) ListDataStores(ctx context.Context, teamID *int64, pg *Pagination) ([]DataStore, error) {
	q := url.Values{}
	addInt64(q, "teamId", teamID)
	pg.apply(q)

	var env struct {
		DataStores []DataStore `json:"dataStores"`
	}
	if err := c.do(ctx, "GET", "/data-stores", nil, q, &env); err != nil {
		return nil, err
	}
	return env.DataStores, nil
}

// GetDataStore fetches a single data store by id.
func (c *apiClient) GetDataStore(ctx context.Context, dataStoreID int64) (*DataStore, error) {
	var env struct {
		DataStore DataStore `json:"dataStore"`
	}
	if err := c.do(ctx, "GET", fmt.Sprintf("/data-stores/%d", dataStoreID), nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.DataStore, nil
}

// CreateDataStore creates a new data store.
func (c *apiClient) CreateDataStore(ctx context.Context, req *CreateDataStoreRequest) (*DataStore, error) {
	var env struct {
		DataStore DataStore `json:"dataStore"`
	}
	if err := c.do(ctx, "POST", "/data-stores", req, nil, &env); err != nil {
		return nil, err
	}
	return &env.DataStore, nil
}

// DeleteDataStore removes a data store and all of its records.
func (c *apiClient) DeleteDataStore(ctx context.Context, dataStoreID int64) error {
	q := url.Values{}
	q.Set("confirmed", "true")
	return c.do(ctx, "DELETE", fmt.Sprintf("/data-stores/%d", dataStoreID), nil, q, nil)
}

// ListDataStoreRecords returns records held in a data store.
func (c *apiClient) ListDataStoreRecords(ctx context.Context, dataStoreID int64, pg *Pagination) ([]DataStoreRecord, error) {
	q := url.Values{}
	pg.apply(q)

	var records []DataStoreRecord
	if err := c.do(ctx, "GET", fmt.Sprintf("/data-stores/%d/data", dataStoreID), nil, q, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CreateDataStoreRecord adds a record to a data store.
func (c *apiClient) CreateDataStoreRecord(ctx context.Context, dataStoreID int64, req *CreateDataStoreRecordRequest) (*DataStoreRecord, error) {
	var record DataStoreRecord
	if err := c.do(ctx, "POST", fmt.Sprintf("/data-stores/%d/data", dataStoreID), req, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
