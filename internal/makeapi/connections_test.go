package makeapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListConnections_TeamScope(t *testing.T) {
	client, mt := newMockedClient(t, okResponse(`{"connections":[
		{"id":21,"name":"Slack","accountName":"slack","teamId":3,"scopes":["chat:write"]}
	]}`))

	conns, err := client.ListConnections(context.Background(), Int64(3), nil)
	require.NoError(t, err)

	assert.Contains(t, mt.lastReq.URL, "/connections")
	assert.Equal(t, "3", lastQuery(t, mt).Get("teamId"))
	require.Len(t, conns, 1)
	assert.Equal(t, "Slack", conns[0].Name)
	assert.Equal(t, []string{"chat:write"}, conns[0].Scopes)
}

func TestListHooks_TeamScope(t *testing.T) {
	client, mt := newMockedClient(t, okResponse(`{"hooks":[
		{"id":31,"name":"Inbound","teamId":3,"url":"https://hook.example.com/x","enabled":true}
	]}`))

	hooks, err := client.ListHooks(context.Background(), Int64(3), nil)
	require.NoError(t, err)

	assert.Contains(t, mt.lastReq.URL, "/hooks")
	assert.Equal(t, "3", lastQuery(t, mt).Get("teamId"))
	require.Len(t, hooks, 1)
	assert.True(t, hooks[0].Enabled)
	assert.Equal(t, "https://hook.example.com/x", hooks[0].URL)
}
