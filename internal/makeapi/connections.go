package makeapi

import (
	"context"
	"net/url"
)

// ListConnections returns credential references, optionally scoped to a team.
func (c *apiClient) ListConnections(ctx context.Context, teamID *int64, pg *Pagination) ([]Connection, error) {
	q := url.Values{}
	addInt64(q, "teamId", teamID)
	pg.apply(q)

	var env struct {
		Connections []Connection `json:"connections"`
	}
	if err := c.do(ctx, "GET", "/connections", nil, q, &env); err != nil {
		return nil, err
	}
	return env.Connections, nil
}

// ListHooks returns webhooks, optionally scoped to a team.
func (c *apiClient) ListHooks(ctx context.Context, teamID *int64, pg *Pagination) ([]Hook, error) {
	q := url.Values{}
	addInt64(q, "teamId", teamID)
	pg.apply(q)

	var env struct {
		Hooks []Hook `json:"hooks"`
	}
	if err := c.do(ctx, "GET", "/hooks", nil, q, &env); err != nil {
		return nil, err
	}
	return env.Hooks, nil
}
