package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Wikia/thanksmetoo/internal/domain"
	"github.com/Wikia/thanksmetoo/internal/hooks"
)

type toolRegistry interface {
	HistoryTools(ctx context.Context, v hooks.HistoryView) []hooks.Tool
	DiffTools(ctx context.Context, v hooks.HistoryView) []hooks.Tool
	LogLineTools(ctx context.Context, v hooks.LogLineView) []hooks.Tool
}

type viewLoader interface {
	HistoryView(ctx context.Context, viewer domain.Identity, session domain.SessionFlags, revID, prevID int64) (hooks.HistoryView, error)
	LogLineView(ctx context.Context, viewer domain.Identity, session domain.SessionFlags, logID int64) (hooks.LogLineView, error)
}

// ToolsHandler tells a front end which thank affordances to render.
type ToolsHandler struct {
	registry toolRegistry
	views    viewLoader
	requests requestBuilder
	log      *slog.Logger
}

// NewToolsHandler creates a ToolsHandler.
func NewToolsHandler(registry toolRegistry, views viewLoader, actors actorLoader, sessions sessionStore, logger *slog.Logger) *ToolsHandler {
	return &ToolsHandler{
		registry: registry,
		views:    views,
		requests: requestBuilder{actors: actors, sessions: sessions},
		log:      logger.With("handler", "tools"),
	}
}

type toolsResponse struct {
	Tools []hooks.Tool `json:"tools"`
}

// RevisionTools handles GET /api/revisions/{id}/thank-tool. The optional
// prev query parameter names the older side of a diff; view=diff selects
// diff rendering.
func (h *ToolsHandler) RevisionTools(w http.ResponseWriter, r *http.Request) {
	revID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid revision id")
		return
	}
	prevID, err := optionalInt(r.URL.Query().Get("prev"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidBody, "prev must be an integer")
		return
	}

	req, err := h.requests.build(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.views.HistoryView(r.Context(), req.Actor, req.Session, revID, int64(prevID))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var tools []hooks.Tool
	if r.URL.Query().Get("view") == "diff" {
		tools = h.registry.DiffTools(r.Context(), view)
	} else {
		tools = h.registry.HistoryTools(r.Context(), view)
	}
	writeJSON(w, http.StatusOK, toolsResponse{Tools: tools})
}

// LogTools handles GET /api/log/{id}/thank-tool.
func (h *ToolsHandler) LogTools(w http.ResponseWriter, r *http.Request) {
	logID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid log id")
		return
	}

	req, err := h.requests.build(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.views.LogLineView(r.Context(), req.Actor, req.Session, logID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toolsResponse{Tools: h.registry.LogLineTools(r.Context(), view)})
}
