package testserver_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/ecotrack/govdash/internal/testserver"
)

func apiRequest(t *testing.T, client *http.Client, method, url, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func connectMCP(t *testing.T, ts *testserver.TestServer, httpClient *http.Client) *sdkmcp.ClientSession {
	t.Helper()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "functional-test", Version: "v0.0.1"}, nil)
	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint:   ts.Server.URL + "/mcp",
		HTTPClient: httpClient,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestFunctional_RESTRequiresToken(t *testing.T) {
	ts := testserver.New(t, "secret-token", "inspector")

	resp := apiRequest(t, http.DefaultClient, http.MethodGet, ts.Server.URL+"/api/emissions/companies", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = apiRequest(t, http.DefaultClient, http.MethodGet, ts.Server.URL+"/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = apiRequest(t, ts.Client(), http.MethodGet, ts.Server.URL+"/api/emissions/companies?status=exceeded", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var companies []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&companies))
	require.Len(t, companies, 3)
}

func TestFunctional_RESTActionsAttributedToOperator(t *testing.T) {
	ts := testserver.New(t, "secret-token", "inspector")
	client := ts.Client()

	resp := apiRequest(t, client, http.MethodPost, ts.Server.URL+"/api/registrations/john@company.com/approve", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = apiRequest(t, client, http.MethodGet, ts.Server.URL+"/api/activity?subject=john@company.com", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []struct {
		Actor        string `json:"actor"`
		ActivityType string `json:"type"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	require.Len(t, entries, 1)
	require.Equal(t, "inspector", entries[0].Actor)
	require.Equal(t, "registration_approved", entries[0].ActivityType)
}

func TestFunctional_MCPOverHTTP(t *testing.T) {
	ts := testserver.New(t, "secret-token", "inspector")
	session := connectMCP(t, ts, ts.Client())
	ctx := context.Background()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, tools.Tools)

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "set_sector_limit",
		Arguments: map[string]any{"sector": "Energy", "limit": 1100},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	// The MCP call and the REST API share one database.
	resp := apiRequest(t, ts.Client(), http.MethodGet, ts.Server.URL+"/api/emissions/companies?sector=Energy", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var companies []struct {
		Limit  float64 `json:"limit"`
		Status string  `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&companies))
	require.Len(t, companies, 2)
	for _, c := range companies {
		require.Equal(t, 1100.0, c.Limit)
	}

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "recent_activity", Arguments: map[string]any{}})
	require.NoError(t, err)
	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.Contains(t, string(data), `"actor":"inspector"`)
}

func TestFunctional_MCPRejectsUnknownToken(t *testing.T) {
	ts := testserver.New(t, "secret-token", "inspector")
	other := &testserver.TestServer{Token: "wrong-token"}
	session := connectMCP(t, ts, other.Client())

	_, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "get_overview",
		Arguments: map[string]any{},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unauthorized")
}
