package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/Wikia/thanksmetoo/internal/domain"
	"github.com/Wikia/thanksmetoo/pkg/ctxutil"
)

var (
	alice = domain.Identity{ID: 10, Name: "Alice"}
	bob   = domain.Identity{ID: 20, Name: "Bob"}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// loggedInAs returns a service mock whose LoadActor resolves actor id 10
// to alice and everything else to an anonymous visitor.
func loggedInAs() *thanksServiceMock {
	return &thanksServiceMock{
		LoadActorFunc: func(_ context.Context, actorID int64, fallback string) (domain.Identity, error) {
			if actorID == alice.ID {
				return alice, nil
			}
			return domain.Anonymous(fallback), nil
		},
	}
}

func nopSessions() *sessionStoreMock {
	return &sessionStoreMock{
		FlagsFunc: func(string, int64) domain.SessionFlags { return domain.NopSessionFlags{} },
	}
}

// withRequestContext fills the context values normally set by middleware.
func withRequestContext(r *http.Request, actorID int64, vars map[string]string) *http.Request {
	ctx := r.Context()
	if actorID > 0 {
		ctx = ctxutil.WithActorID(ctx, actorID)
	}
	ctx = ctxutil.WithSessionID(ctx, "sess-1")
	ctx = ctxutil.WithClientIP(ctx, "192.0.2.7")
	r = r.WithContext(ctx)
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}
