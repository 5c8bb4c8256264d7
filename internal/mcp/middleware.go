package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/transport"
)

// ErrUnauthorized is returned for calls without a valid bearer token.
var ErrUnauthorized = errors.New("unauthorized")

// OperatorResolver resolves the operator name from a bearer token.
type OperatorResolver interface {
	ResolveOperator(ctx context.Context, token string) (string, error)
}

// Session setup and keep-alives run before a client can present credentials.
func isPublicMethod(method string) bool {
	return method == "initialize" || method == "ping" || strings.HasPrefix(method, "notifications/")
}

// authMiddleware attributes each call to the operator owning the request's
// bearer token and rejects calls without one.
func authMiddleware(resolver OperatorResolver) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if isPublicMethod(method) {
				return next(ctx, method, req)
			}
			operator, err := authenticate(ctx, resolver, req)
			if err != nil {
				return nil, err
			}
			return next(activity.WithActor(ctx, operator), method, req)
		}
	}
}

func authenticate(ctx context.Context, resolver OperatorResolver, req sdkmcp.Request) (string, error) {
	extra := req.GetExtra()
	if extra == nil || extra.Header == nil {
		return "", fmt.Errorf("%w: missing headers", ErrUnauthorized)
	}
	token := transport.BearerToken(extra.Header.Get("Authorization"))
	if token == "" {
		return "", fmt.Errorf("%w: missing bearer token", ErrUnauthorized)
	}
	operator, err := resolver.ResolveOperator(ctx, token)
	if err != nil || operator == "" {
		return "", fmt.Errorf("%w: invalid bearer token", ErrUnauthorized)
	}
	return operator, nil
}

// noAuthMiddleware attributes every call to a fixed actor when auth is disabled.
func noAuthMiddleware(actor string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			return next(activity.WithActor(ctx, actor), method, req)
		}
	}
}
