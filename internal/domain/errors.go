package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrRateLimited   = errors.New("rate limited")
	ErrIneligible    = errors.New("ineligible recipient")
)

// CodeInvalidParams is the error code of a malformed thank request.
const CodeInvalidParams = "thanks-error-invalid-params"

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
// Code is the machine-readable code reported to callers; empty means
// CodeInvalidParams.
type ValidationError struct {
	Code   string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ErrorCode returns the stable code for this error.
func (e *ValidationError) ErrorCode() string {
	if e.Code == "" {
		return CodeInvalidParams
	}
	return e.Code
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ThanksError is a terminal lookup failure: the referenced edit or action
// does not exist (ErrNotFound) or its visibility forbids thanking it
// (ErrForbidden).
type ThanksError struct {
	Code    string
	Message string
	kind    error
}

func (e *ThanksError) Error() string     { return e.Code + ": " + e.Message }
func (e *ThanksError) Unwrap() error     { return e.kind }
func (e *ThanksError) ErrorCode() string { return e.Code }

// NewNotFoundError creates a ThanksError wrapping ErrNotFound.
func NewNotFoundError(code, message string) *ThanksError {
	return &ThanksError{Code: code, Message: message, kind: ErrNotFound}
}

// NewPermissionError creates a ThanksError wrapping ErrForbidden.
func NewPermissionError(code, message string) *ThanksError {
	return &ThanksError{Code: code, Message: message, kind: ErrForbidden}
}

// AuthReason names why an actor may not thank a recipient.
type AuthReason string

const (
	AuthReasonNotLoggedIn      AuthReason = "not-logged-in"
	AuthReasonRateLimited      AuthReason = "rate-limited"
	AuthReasonBlocked          AuthReason = "blocked"
	AuthReasonSelfThanks       AuthReason = "self-thanks"
	AuthReasonInvalidRecipient AuthReason = "invalid-recipient"
	AuthReasonBotRecipient     AuthReason = "bot-recipient"
)

func (r AuthReason) String() string { return string(r) }

// AuthorizationError reports an actor or recipient eligibility failure.
// Actor and Recipient carry display names for user-facing messages.
type AuthorizationError struct {
	Reason    AuthReason
	Actor     string
	Recipient string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization: %s", e.Reason)
}

// Unwrap maps the reason onto the sentinel used for status mapping.
func (e *AuthorizationError) Unwrap() error {
	switch e.Reason {
	case AuthReasonNotLoggedIn:
		return ErrUnauthorized
	case AuthReasonRateLimited:
		return ErrRateLimited
	case AuthReasonBlocked:
		return ErrForbidden
	default:
		return ErrIneligible
	}
}

// ErrorCode returns the stable code for this error.
func (e *AuthorizationError) ErrorCode() string {
	switch e.Reason {
	case AuthReasonNotLoggedIn:
		return "thanks-error-notloggedin"
	case AuthReasonRateLimited:
		return "thanks-error-ratelimited"
	case AuthReasonBlocked:
		return "thanks-error-blocked"
	case AuthReasonSelfThanks:
		return "thanks-error-invalidrecipient-self"
	case AuthReasonBotRecipient:
		return "thanks-error-invalidrecipient-bot"
	default:
		return "thanks-error-invalidrecipient"
	}
}

// Message returns a human-readable description of the failure.
func (e *AuthorizationError) Message() string {
	switch e.Reason {
	case AuthReasonNotLoggedIn:
		return "You must be logged in to send thanks."
	case AuthReasonRateLimited:
		return fmt.Sprintf("%s has sent too many thanks recently. Please wait a while.", e.Actor)
	case AuthReasonBlocked:
		return "You are blocked from sending thanks."
	case AuthReasonSelfThanks:
		return "You cannot thank yourself."
	case AuthReasonBotRecipient:
		return fmt.Sprintf("%s is a bot and cannot be thanked.", e.Recipient)
	default:
		return "Thanks cannot be sent to this recipient."
	}
}

// TransmissionError reports that the notification channel did not accept
// a notification. It is logged and never returned to callers.
type TransmissionError struct {
	Channel string
	Err     error
}

func (e *TransmissionError) Error() string {
	return fmt.Sprintf("transmit via %s: %v", e.Channel, e.Err)
}

func (e *TransmissionError) Unwrap() error { return e.Err }
