package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Wikia/thanksmetoo/internal/domain"
)

// Codes for failures that carry no domain code of their own.
const (
	codeInternal     = "internal-error"
	codeNotFound     = "not-found"
	codeBadMethod    = "method-not-allowed"
	codeInvalidBody  = domain.CodeInvalidParams
	msgInternalError = "internal server error"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

type coded interface {
	ErrorCode() string
}

type messenger interface {
	Message() string
}

// statusFor maps a domain error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrIneligible):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes err as an ErrorResponse. Unknown errors are logged
// and reported as internal-error without detail.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, status, codeInternal, msgInternalError)
		return
	}

	code := codeNotFound
	var c coded
	if errors.As(err, &c) {
		code = c.ErrorCode()
	}

	message := err.Error()
	var m messenger
	var te *domain.ThanksError
	switch {
	case errors.As(err, &te):
		message = te.Message
	case errors.As(err, &m):
		message = m.Message()
	}
	writeError(w, status, code, message)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{ErrorCode: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
