package auth

import "context"

type ctxKey string

const actorKey ctxKey = "stocktake_actor"

// Actor is the authenticated operator driving a request. Role decides the
// report-deletion capability; ID keys the operator's counting session.
type Actor struct {
	ID       string
	Username string
	Role     string
}

const RoleAdmin = "admin"

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// ActorFrom extracts the authenticated actor. The middleware populates it;
// an absent actor means the route was wired without authentication.
func ActorFrom(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey).(Actor)
	return a, ok
}
