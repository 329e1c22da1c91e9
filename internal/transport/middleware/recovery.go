package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Wikia/thanksmetoo/pkg/ctxutil"
)

// Recovery turns a panicking handler into a 500 internal-error response.
// The panic value and stack are logged with the request and actor ids.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				ctx := r.Context()
				actorID, _ := ctxutil.ActorIDFromCtx(ctx)
				logger.ErrorContext(ctx, "panic recovered",
					slog.Any("panic", v),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
					slog.Int64("actor_id", actorID),
				)
				writeError(w, http.StatusInternalServerError, "internal-error", "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
