package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Wikia/thanksmetoo/internal/domain"
	"github.com/Wikia/thanksmetoo/internal/service/thanks"
)

type thanksService interface {
	actorLoader
	Thank(ctx context.Context, req thanks.Request, input thanks.ThankInput) (thanks.DispatchResult, error)
	Confirmation(par string) thanks.Confirmation
	SubmitConfirmation(ctx context.Context, req thanks.Request, par string) (thanks.ThankedNotice, error)
	ListLog(ctx context.Context, input thanks.ListLogInput) ([]thanks.LogItem, error)
}

// ThanksHandler serves the thank RPC, the confirmation page and the
// thanks log.
type ThanksHandler struct {
	svc      thanksService
	requests requestBuilder
	log      *slog.Logger
}

// NewThanksHandler creates a ThanksHandler.
func NewThanksHandler(svc thanksService, sessions sessionStore, logger *slog.Logger) *ThanksHandler {
	return &ThanksHandler{
		svc:      svc,
		requests: requestBuilder{actors: svc, sessions: sessions},
		log:      logger.With("handler", "thanks"),
	}
}

// thankRequest accepts edit_id and action_id as aliases of rev and log.
type thankRequest struct {
	Rev      *int64 `json:"rev"`
	Log      *int64 `json:"log"`
	EditID   *int64 `json:"edit_id"`
	ActionID *int64 `json:"action_id"`
	Source   string `json:"source"`
}

func (req thankRequest) reference() thanks.Reference {
	ref := thanks.Reference{RevisionID: req.Rev, LogID: req.Log}
	if ref.RevisionID == nil {
		ref.RevisionID = req.EditID
	}
	if ref.LogID == nil {
		ref.LogID = req.ActionID
	}
	return ref
}

type thankResponse struct {
	Success   bool   `json:"success"`
	Recipient string `json:"recipient"`
}

// Thank handles POST /api/thank.
func (h *ThanksHandler) Thank(w http.ResponseWriter, r *http.Request) {
	var body thankRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidBody, "invalid request body")
		return
	}

	req, err := h.requests.build(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.Thank(r.Context(), req, thanks.ThankInput{Ref: body.reference(), Source: body.Source})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, thankResponse{Success: true, Recipient: res.Recipient})
}

type confirmationResponse struct {
	Type                 domain.EventKind `json:"type,omitempty"`
	ID                   int64            `json:"id"`
	MessageKey           string           `json:"message_key"`
	CanSubmit            bool             `json:"can_submit"`
	ConfirmationRequired bool             `json:"confirmation_required"`
}

// Confirmation handles GET /thanks/{par}.
func (h *ThanksHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	c := h.svc.Confirmation(mux.Vars(r)["par"])
	writeJSON(w, http.StatusOK, confirmationResponse{
		Type:                 c.Kind,
		ID:                   c.ID,
		MessageKey:           c.MessageKey,
		CanSubmit:            c.CanSubmit,
		ConfirmationRequired: c.ConfirmationRequired,
	})
}

type thankedNoticeResponse struct {
	Success      bool   `json:"success"`
	MessageKey   string `json:"message_key"`
	Recipient    string `json:"recipient"`
	RecipientURL string `json:"recipient_url"`
	Sender       string `json:"sender"`
}

// SubmitConfirmation handles POST /thanks/{par}.
func (h *ThanksHandler) SubmitConfirmation(w http.ResponseWriter, r *http.Request) {
	req, err := h.requests.build(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	notice, err := h.svc.SubmitConfirmation(r.Context(), req, mux.Vars(r)["par"])
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, thankedNoticeResponse{
		Success:      true,
		MessageKey:   "thanks-thanked-notice",
		Recipient:    notice.Recipient,
		RecipientURL: notice.RecipientProfileURL,
		Sender:       notice.Sender,
	})
}

type logItemResponse struct {
	ID           string    `json:"id"`
	ThanksKey    string    `json:"thanks_key"`
	Source       string    `json:"source,omitempty"`
	Actor        string    `json:"actor"`
	ActorURL     string    `json:"actor_url"`
	Recipient    string    `json:"recipient"`
	RecipientURL string    `json:"recipient_url"`
	Timestamp    time.Time `json:"timestamp"`
}

type logResponse struct {
	Items []logItemResponse `json:"items"`
}

// Log handles GET /api/thanks/log.
func (h *ThanksHandler) Log(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := optionalInt(q.Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidBody, "limit must be an integer")
		return
	}
	offset, err := optionalInt(q.Get("offset"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidBody, "offset must be an integer")
		return
	}

	items, err := h.svc.ListLog(r.Context(), thanks.ListLogInput{
		User:      q.Get("user"),
		Direction: q.Get("direction"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := logResponse{Items: make([]logItemResponse, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, logItemResponse{
			ID:           it.ID.String(),
			ThanksKey:    it.ThanksKey,
			Source:       it.Source,
			Actor:        it.ActorName,
			ActorURL:     it.ActorProfileURL,
			Recipient:    it.RecipientName,
			RecipientURL: it.RecipientProfileURL,
			Timestamp:    it.RecordedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func optionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
