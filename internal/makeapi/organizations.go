package makeapi

import (
	"context"
	"net/url"
)

// ListTeams returns teams, optionally scoped to an organization.
func (c *apiClient) ListTeams(ctx context.Context, organizationID *int64, pg *Pagination) ([]Team, error) {
	q := url.Values{}
	addInt64(q, "organizationId", organizationID)
	pg.apply(q)

	var env struct {
		Teams []Team `json:"teams"`
	}
	if err := c.do(ctx, "GET", "/teams", nil, q, &env); err != nil {
		return nil, err
	}
	return env.Teams, nil
}

// ListOrganizations returns organizations the token has access to.
func (c *apiClient) ListOrganizations(ctx context.Context, pg *Pagination) ([]Organization, error) {
	q := url.Values{}
	pg.apply(q)

	var env struct {
		Organizations []Organization `json:"organizations"`
	}
	if err := c.do(ctx, "GET", "/organizations", nil, q, &env); err != nil {
		return nil, err
	}
	return env.Organizations, nil
}

// GetCurrentUser returns the user the token authenticates as.
func (c *apiClient) GetCurrentUser(ctx context.Context) (*User, error) {
	var env struct {
		AuthUser User `json:"authUser"`
	}
	if err := c.do(ctx, "GET", "/users/me", nil, nil, &env); err != nil {
		return nil, err
	}
	return &env.AuthUser, nil
}
