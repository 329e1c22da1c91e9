package thanks

import (
	"context"
	"strconv"
	"strings"

	"github.com/Wikia/thanksmetoo/internal/domain"
)

// Confirmation page message keys.
const (
	MsgNoIDSpecified     = "thanks-error-no-id-specified"
	MsgConfirmEdit       = "thanks-confirmation-special-rev"
	MsgConfirmAction     = "thanks-confirmation-special-log"
	confirmActionSegment = "log"
)

// Confirmation describes the confirmation page for a path parameter such
// as "123" or "Log/123". ID is 0 when the parameter is not a valid id.
type Confirmation struct {
	Kind                 domain.EventKind
	ID                   int64
	MessageKey           string
	CanSubmit            bool
	ConfirmationRequired bool
}

// ParseConfirmation interprets the confirmation page parameter.
func ParseConfirmation(par string) Confirmation {
	if par == "" {
		return Confirmation{MessageKey: MsgNoIDSpecified}
	}

	c := Confirmation{Kind: domain.EventKindEdit}
	raw := par
	if head, tail, _ := strings.Cut(par, "/"); strings.EqualFold(head, confirmActionSegment) {
		c.Kind = domain.EventKindAction
		raw = tail
	}
	c.ID = parseDigits(raw)

	switch {
	case c.ID == 0 && c.Kind == domain.EventKindAction:
		c.MessageKey = CodeInvalidLogID
	case c.ID == 0:
		c.MessageKey = CodeInvalidRevision
	case c.Kind == domain.EventKindAction:
		c.MessageKey = MsgConfirmAction
		c.CanSubmit = true
	default:
		c.MessageKey = MsgConfirmEdit
		c.CanSubmit = true
	}
	return c
}

// parseDigits returns the value of s if it is made of ASCII digits only,
// otherwise 0.
func parseDigits(s string) int64 {
	if s == "" {
		return 0
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Ref returns the reference the confirmation submits.
func (c Confirmation) Ref() Reference {
	if c.Kind == domain.EventKindAction {
		return ActionRef(c.ID)
	}
	return EditRef(c.ID)
}

// Confirmation returns the confirmation page state for par.
func (s *Service) Confirmation(par string) Confirmation {
	c := ParseConfirmation(par)
	c.ConfirmationRequired = s.cfg.ConfirmationRequired()
	return c
}

// ThankedNotice is shown after a confirmation page submit.
type ThankedNotice struct {
	Recipient           string
	RecipientProfileURL string
	Sender              string
	Duplicate           bool
}

// SubmitConfirmation sends the thanks named by par on behalf of req.Actor.
func (s *Service) SubmitConfirmation(ctx context.Context, req Request, par string) (ThankedNotice, error) {
	c := ParseConfirmation(par)
	if c.Kind == "" {
		return ThankedNotice{}, &domain.ValidationError{
			Code:   MsgNoIDSpecified,
			Errors: []domain.FieldError{{Field: "id", Message: "required"}},
		}
	}

	res, err := s.Thank(ctx, req, ThankInput{Ref: c.Ref(), Source: SourceSpecialPage})
	if err != nil {
		return ThankedNotice{}, err
	}

	return ThankedNotice{
		Recipient:           res.Recipient,
		RecipientProfileURL: s.links.ProfileURL(res.Recipient),
		Sender:              req.Actor.Name,
		Duplicate:           res.Duplicate,
	}, nil
}
