// Package testserver runs the full govdash HTTP stack over an in-memory
// database for functional tests.
package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/domain/emission"
	"github.com/ecotrack/govdash/internal/domain/overview"
	"github.com/ecotrack/govdash/internal/domain/query"
	"github.com/ecotrack/govdash/internal/domain/registration"
	"github.com/ecotrack/govdash/internal/mcp"
	"github.com/ecotrack/govdash/internal/sqlite"
	"github.com/ecotrack/govdash/internal/transport"
)

type TestServer struct {
	Server    *httptest.Server
	DB        *sqlite.DB
	Operators *sqlite.OperatorRepository
	Token     string
	Operator  string
}

// New starts a server with auth enabled; token authenticates as operator.
func New(t *testing.T, token, operator string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	operators := sqlite.NewOperatorRepository(db)
	activitySvc := activity.NewService(sqlite.NewActivityRepository(db), nil)
	overviewSvc := overview.NewService(sqlite.NewOverviewRepository(db), nil)
	emissionSvc := emission.NewService(sqlite.NewCompanyRepository(db), activitySvc, nil)
	registrationSvc := registration.NewService(sqlite.NewRegistrationRepository(db), activitySvc, nil)
	querySvc := query.NewService(sqlite.NewQueryRepository(db), activitySvc, query.DefaultAlertWindow, nil)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Overview:      overviewSvc,
			Emissions:     emissionSvc,
			Registrations: registrationSvc,
			Queries:       querySvc,
			Activity:      activitySvc,
		},
		Resolver:      operators,
		AuthEnabled:   true,
		TransportMode: "http",
	})

	router := transport.NewServer(transport.Config{
		Services: transport.Services{
			Overview:      overviewSvc,
			Emissions:     emissionSvc,
			Registrations: registrationSvc,
			Queries:       querySvc,
			Activity:      activitySvc,
		},
		Auth: transport.AuthMiddleware(operators),
		MCP:  mcp.NewHTTPHandler(mcpServer),
	})
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:    server,
		DB:        db,
		Operators: operators,
		Token:     token,
		Operator:  operator,
	}

	require.NoError(t, ts.AddAPIKey(token, operator))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

func (ts *TestServer) AddAPIKey(token, operator string) error {
	return ts.Operators.AddAPIKey(context.Background(), token, operator, "test key")
}

// Client returns an HTTP client that sends the server's bearer token.
func (ts *TestServer) Client() *http.Client {
	return &http.Client{Transport: bearerTransport{token: ts.Token, next: http.DefaultTransport}}
}

type bearerTransport struct {
	token string
	next  http.RoundTripper
}

func (b bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+b.token)
	return b.next.RoundTrip(req)
}
