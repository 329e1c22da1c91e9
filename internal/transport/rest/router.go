package rest

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Wikia/thanksmetoo/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health *HealthHandler
	Thanks *ThanksHandler
	Tools  *ToolsHandler
}

// NewRouter mounts probes and /metrics bare, and everything else behind mw.
// thanksPath is the confirmation page prefix, e.g. "/thanks/".
func NewRouter(h Handlers, thanksPath string, mw middleware.Middleware) *mux.Router {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	app := r.NewRoute().Subrouter()
	app.Use(mux.MiddlewareFunc(mw))
	app.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	api := app.PathPrefix("/api").Subrouter()
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	api.HandleFunc("/thank", h.Thanks.Thank).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/thanks/log", h.Thanks.Log).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/revisions/{id:[0-9]+}/thank-tool", h.Tools.RevisionTools).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/log/{id:[0-9]+}/thank-tool", h.Tools.LogTools).Methods(http.MethodGet, http.MethodOptions)

	base := "/" + strings.Trim(thanksPath, "/")
	for _, p := range []string{base, base + "/{par:.*}"} {
		app.HandleFunc(p, h.Thanks.Confirmation).Methods(http.MethodGet)
		app.HandleFunc(p, h.Thanks.SubmitConfirmation).Methods(http.MethodPost)
	}

	return r
}

// methodNotAllowed is set on every router level; nested subrouters otherwise
// drop the method mismatch and answer 404.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, codeBadMethod, r.Method+" is not allowed on "+r.URL.Path)
}
