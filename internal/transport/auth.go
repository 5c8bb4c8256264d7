package transport

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ecotrack/govdash/internal/domain/activity"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

// OperatorResolver resolves the operator name from a bearer token.
type OperatorResolver interface {
	ResolveOperator(ctx context.Context, token string) (string, error)
}

const bearerScheme = "bearer "

// BearerToken extracts the token from an "Authorization: Bearer" header. The
// scheme is matched case-insensitively; any other header yields "".
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerScheme) || !strings.EqualFold(header[:len(bearerScheme)], bearerScheme) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerScheme):])
}

// AuthMiddleware enforces bearer token authentication and records the
// resolved operator as the actor of the request.
func AuthMiddleware(resolver OperatorResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r.Header.Get("Authorization"))
			if token == "" {
				WriteError(w, r, ErrUnauthorized)
				return
			}

			operator, err := resolver.ResolveOperator(r.Context(), token)
			if err != nil || operator == "" {
				WriteError(w, r, ErrUnauthorized)
				return
			}

			ctx := activity.WithActor(r.Context(), operator)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
