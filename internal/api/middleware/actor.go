package middleware

import "context"

// Actor is the authenticated member attached to a request.
type Actor struct {
	ID      string // member VID
	Name    string
	IsStaff bool
}

type actorCtxKey struct{}

// WithActor returns a context carrying the actor.
func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

// ActorFromContext extracts the actor set by the auth middleware.
func ActorFromContext(ctx context.Context) (*Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(*Actor)
	return actor, ok
}
