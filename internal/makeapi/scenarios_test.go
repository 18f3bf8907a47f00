package makeapi

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makebridge/makebridge/internal/transport"
)

// mockTransport records the last request and returns a canned response.
type mockTransport struct {
	lastReq  *transport.Request
	response *transport.Response
	err      error
}

func (m *mockTransport) Execute(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	m.lastReq = req
	return m.response, m.err
}

func (m *mockTransport) Name() string { return "mock" }

func (m *mockTransport) SetRateLimiter(limiter transport.RateLimiter) {}

func okResponse(body string) *transport.Response {
	return &transport.Response{
		StatusCode: 200,
		Status:     "200 OK",
		Body:       []byte(body),
	}
}

func newMockedClient(t *testing.T, resp *transport.Response) (Client, *mockTransport) {
	t.Helper()
	mt := &mockTransport{response: resp}
	client, err := NewClient(Config{
		Token:     "test-token",
		Zone:      "eu2",
		Transport: mt,
	})
	require.NoError(t, err)
	return client, mt
}

// lastQuery parses the query string of the last request seen by the mock.
func lastQuery(t *testing.T, mt *mockTransport) url.Values {
	t.Helper()
	u, err := url.Parse(mt.lastReq.URL)
	require.NoError(t, err)
	return u.Query()
}

func TestCreateScenario_SetsConfirmationFlag(t *testing.T) {
	client, mt := newMockedClient(t, okResponse(`{"scenario":{"id":5,"name":"New","teamId":1}}`))

	scenario, err := client.CreateScenario(context.Background(), &CreateScenarioRequest{
		Blueprint: `{"name":"New","flow":[]}`,
		TeamID:    1,
	})
	require.NoError(t, err)

	assert.Equal(t, "POST", mt.lastReq.Method)
	assert.Equal(t, "true", lastQuery(t, mt).Get("confirmed"))
	assert.Equal(t, int64(5), scenario.ID)
	assert.Equal(t, "New", scenario.Name)
}

func TestUpdateScenario_SetsConfirmationFlag(t *testing.T) {
	client, mt := newMockedClient(t, okResponse(`{"scenario":{"id":5,"name":"Renamed","teamId":1}}`))

	scenario, err := client.UpdateScenario(context.Background(), 5, &UpdateScenarioRequest{Name: "Renamed"})
	require.NoError(t, err)

	assert.Equal(t, "PATCH", mt.lastReq.Method)
	assert.Contains(t, mt.lastReq.URL, "/scenarios/5")
	assert.Equal(t, "true", lastQuery(t, mt).Get("confirmed"))
	assert.Equal(t, "Renamed", scenario.Name)
}

func TestCloneScenario_SetsConfirmationFlag(t *testing.T) {
	client, mt := newMockedClient(t, okResponse(`{"scenario":{"id":6,"name":"Copy","teamId":2}}`))

	scenario, err := client.CloneScenario(context.Background(), 5, &CloneScenarioRequest{
		Name:   "Copy",
		TeamID: Int64(2),
	})
	require.NoError(t, err)

	assert.Contains(t, mt.lastReq.URL, "/scenarios/5/clone")
	assert.Equal(t, "true", lastQuery(t, mt).Get("confirmed"))
	assert.Equal(t, int64(6), scenario.ID)
}

func TestActivateDeactivateScenario_Paths(t *testing.T) {
	client, mt := newMockedClient(t, okResponse(`{"scenario":{"id":5,"isActive":true}}`))

	scenario, err := client.ActivateScenario(context.Background(), 5)
	require.NoError(t, err)
	assert.Contains(t, mt.lastReq.URL, "/scenarios/5/start")
	assert.True(t, scenario.IsActive)

	mt.response = okResponse(`{"scenario":{"id":5,"isActive":false}}`)
	scenario, err = client.DeactivateScenario(context.Background(), 5)
	require.NoError(t, err)
	assert.Contains(t, mt.lastReq.URL, "/scenarios/5/stop")
	assert.False(t, scenario.IsActive)
}

func TestDeleteScenario(t *testing.T) {
	client, mt := newMockedClient(t, okResponse(``))

	err := client.DeleteScenario(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "DELETE", mt.lastReq.Method)
	assert.Contains(t, mt.lastReq.URL, "/scenarios/5")
}

func TestGetScenarioBlueprint_DecodesModuleTree(t *testing.T) {
	body := `{"response":{"blueprint":{"name":"Demo","flow":[
		{"id":1,"module":"http:ActionSendData","version":3,"mapper":{"url":"https://example.com"}},
		{"id":2,"module":"builtin:BasicRouter","version":1,"routes":[
			{"flow":[{"id":3,"module":"json:ParseJSON","version":1}]}
		]}
	]},"scheduling":{"type":"indefinitely"}}}`

	client, mt := newMockedClient(t, okResponse(body))

	bp, err := client.GetScenarioBlueprint(context.Background(), 9)
	require.NoError(t, err)
	assert.Contains(t, mt.lastReq.URL, "/scenarios/9/blueprint")

	assert.Equal(t, "Demo", bp.Blueprint.Name)
	require.Len(t, bp.Blueprint.Flow, 2)
	assert.Equal(t, "http:ActionSendData", bp.Blueprint.Flow[0].Module)
	assert.Equal(t, "https://example.com", bp.Blueprint.Flow[0].Mapper["url"])

	router := bp.Blueprint.Flow[1]
	require.Len(t, router.Routes, 1)
	require.Len(t, router.Routes[0].Flow, 1)
	assert.Equal(t, "json:ParseJSON", router.Routes[0].Flow[0].Module)
}

func TestGetScenarioLogs_Pagination(t *testing.T) {
	client, mt := newMockedClient(t, okResponse(`{"scenarioLogs":[{"imtId":"l1","type":"auto"}]}`))

	logs, err := client.GetScenarioLogs(context.Background(), 9, &Pagination{Limit: Int(50)})
	require.NoError(t, err)

	q := lastQuery(t, mt)
	assert.Equal(t, "50", q.Get("pg[limit]"))
	assert.False(t, q.Has("pg[offset]"))
	require.Len(t, logs, 1)
	assert.Equal(t, "l1", logs[0].IMTID)
}

func TestListScenarios_DecodesEnvelope(t *testing.T) {
	client, _ := newMockedClient(t, okResponse(`{"scenarios":[
		{"id":1,"name":"A","teamId":1,"isActive":true},
		{"id":2,"name":"B","teamId":1,"isActive":false,"isinvalid":true,"islinked":true}
	]}`))

	scenarios, err := client.ListScenarios(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "A", scenarios[0].Name)
	assert.True(t, scenarios[0].IsActive)
	assert.Equal(t, int64(2), scenarios[1].ID)

	// The invalid flag decodes from its own field, not the linked flag.
	assert.False(t, scenarios[0].IsInvalid)
	assert.True(t, scenarios[1].IsInvalid)
}
