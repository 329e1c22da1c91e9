package rest

import (
	"context"
	"net/http"

	"github.com/Wikia/thanksmetoo/internal/domain"
	"github.com/Wikia/thanksmetoo/internal/service/thanks"
	"github.com/Wikia/thanksmetoo/pkg/ctxutil"
)

type actorLoader interface {
	LoadActor(ctx context.Context, actorID int64, fallbackName string) (domain.Identity, error)
}

type sessionStore interface {
	Flags(sessionID string, actorID int64) domain.SessionFlags
}

// requestBuilder turns middleware-populated context into a thanks.Request.
type requestBuilder struct {
	actors   actorLoader
	sessions sessionStore
}

func (b requestBuilder) build(r *http.Request) (thanks.Request, error) {
	ctx := r.Context()
	actorID, _ := ctxutil.ActorIDFromCtx(ctx)
	actor, err := b.actors.LoadActor(ctx, actorID, ctxutil.ClientIPFromCtx(ctx))
	if err != nil {
		return thanks.Request{}, err
	}
	return thanks.Request{
		Actor:   actor,
		Session: b.sessions.Flags(ctxutil.SessionIDFromCtx(ctx), actor.ID),
	}, nil
}
