package makeapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTeams_OrganizationScope(t *testing.T) {
	client, mt := newMockedClient(t, okResponse(`{"teams":[{"id":3,"name":"Ops","organizationId":1}]}`))

	teams, err := client.ListTeams(context.Background(), Int64(1), nil)
	require.NoError(t, err)

	assert.Contains(t, mt.lastReq.URL, "/teams")
	assert.Equal(t, "1", lastQuery(t, mt).Get("organizationId"))
	require.Len(t, teams, 1)
	assert.Equal(t, "Ops", teams[0].Name)
}

func TestListOrganizations(t *testing.T) {
	client, mt := newMockedClient(t, okResponse(`{"organizations":[{"id":1,"name":"Acme","zone":"eu2"}]}`))

	orgs, err := client.ListOrganizations(context.Background(), nil)
	require.NoError(t, err)

	assert.Contains(t, mt.lastReq.URL, "/organizations")
	require.Len(t, orgs, 1)
	assert.Equal(t, "Acme", orgs[0].Name)
	assert.Equal(t, "eu2", orgs[0].Zone)
}

func TestGetCurrentUser_DecodesAuthUserEnvelope(t *testing.T) {
	client, mt := newMockedClient(t, okResponse(`{"authUser":{"id":7,"name":"Ada","email":"ada@example.com"}}`))

	user, err := client.GetCurrentUser(context.Background())
	require.NoError(t, err)

	assert.Contains(t, mt.lastReq.URL, "/users/me")
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
}
