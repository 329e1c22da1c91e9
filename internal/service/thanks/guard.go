package thanks

import (
	"context"

	"github.com/Wikia/thanksmetoo/internal/domain"
)

// authorize runs every actor and recipient check in order.
func (s *Service) authorize(ctx context.Context, actor domain.Identity, event domain.ContributionEvent) error {
	if err := s.authorizeActor(ctx, actor); err != nil {
		return err
	}
	return s.authorizeRecipient(actor, event.Recipient)
}

// authorizeActor checks that actor may send thanks at all. A successful
// call consumes one rate-limit token.
func (s *Service) authorizeActor(_ context.Context, actor domain.Identity) error {
	if !actor.IsRegistered() {
		return &domain.AuthorizationError{Reason: domain.AuthReasonNotLoggedIn, Actor: actor.Name}
	}
	if !s.limiter.Allow(actor.ID, RateLimitCategory) {
		return &domain.AuthorizationError{Reason: domain.AuthReasonRateLimited, Actor: actor.Name}
	}
	if actor.IsBlockedAnywhere() {
		return &domain.AuthorizationError{Reason: domain.AuthReasonBlocked, Actor: actor.Name}
	}
	return nil
}

// authorizeRecipient checks that actor may thank recipient.
func (s *Service) authorizeRecipient(actor, recipient domain.Identity) error {
	deny := func(reason domain.AuthReason) error {
		return &domain.AuthorizationError{Reason: reason, Actor: actor.Name, Recipient: recipient.Name}
	}

	if actor.ID == recipient.ID {
		return deny(domain.AuthReasonSelfThanks)
	}
	if !recipient.IsRegistered() {
		return deny(domain.AuthReasonInvalidRecipient)
	}
	if recipient.IsBot && !s.cfg.SendToBots {
		return deny(domain.AuthReasonBotRecipient)
	}
	return nil
}

// Authorize reports whether actor may thank the referenced contribution
// without consuming a rate-limit token or sending anything.
func (s *Service) Authorize(ctx context.Context, req Request, ref Reference) (domain.ContributionEvent, error) {
	actor := req.Actor
	if !actor.IsRegistered() {
		return domain.ContributionEvent{}, &domain.AuthorizationError{Reason: domain.AuthReasonNotLoggedIn, Actor: actor.Name}
	}
	if actor.IsBlockedAnywhere() {
		return domain.ContributionEvent{}, &domain.AuthorizationError{Reason: domain.AuthReasonBlocked, Actor: actor.Name}
	}

	event, err := s.resolve(ctx, ref)
	if err != nil {
		return domain.ContributionEvent{}, err
	}
	if err := s.authorizeRecipient(actor, event.Recipient); err != nil {
		return domain.ContributionEvent{}, err
	}
	return event, nil
}
