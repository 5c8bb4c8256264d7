package activity

import "context"

// SystemActor is recorded when no operator is attached to the context.
const SystemActor = "system"

type actorKey struct{}

// WithActor returns a context carrying the operator performing an action.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the operator stored in ctx, or SystemActor.
func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != "" {
		return actor
	}
	return SystemActor
}
