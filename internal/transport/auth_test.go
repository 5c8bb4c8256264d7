package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/stretchr/testify/require"
)

type testResolver struct {
	tokenToOperator map[string]string
	err             error
}

func (r *testResolver) ResolveOperator(_ context.Context, token string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	operator, ok := r.tokenToOperator[token]
	if !ok {
		return "", ErrUnauthorized
	}
	return operator, nil
}

func TestAuthMiddleware(t *testing.T) {
	resolver := &testResolver{tokenToOperator: map[string]string{"token": "inspector"}}

	handler := AuthMiddleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "inspector", activity.ActorFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Invalid(t *testing.T) {
	resolver := &testResolver{err: errors.New("invalid")}

	handler := AuthMiddleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, CodeUnauthorized, body.Code)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	handler := AuthMiddleware(&testResolver{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerToken(t *testing.T) {
	require.Equal(t, "abc", BearerToken("Bearer abc"))
	require.Equal(t, "abc", BearerToken(" Bearer abc "))
	require.Equal(t, "abc", BearerToken("bearer abc"))
	require.Empty(t, BearerToken(""))
	require.Empty(t, BearerToken("abc"))
	require.Empty(t, BearerToken("Basic YWxhZGRpbjpvcGVu"))
	require.Empty(t, BearerToken("Bearer "))
}

func TestAuthMiddleware_SchemelessHeader(t *testing.T) {
	resolver := &testResolver{tokenToOperator: map[string]string{"token": "inspector"}}
	called := false
	handler := AuthMiddleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
}
