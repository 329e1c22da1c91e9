package thanks

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// Thank sends a thanks from req.Actor for the referenced contribution. An
// already-sent thanks is reported as success with Duplicate set.
func (s *Service) Thank(ctx context.Context, req Request, input ThankInput) (DispatchResult, error) {
	res, err := s.thank(ctx, req, input)
	s.observe(ctx, req, input, res, err)
	return res, err
}

func (s *Service) thank(ctx context.Context, req Request, input ThankInput) (DispatchResult, error) {
	if err := input.Validate(); err != nil {
		return DispatchResult{}, err
	}

	// Anonymous and blocked actors are turned away before any lookup.
	if err := s.authorizeActor(ctx, req.Actor); err != nil {
		return DispatchResult{}, err
	}

	event, err := s.resolve(ctx, input.Ref)
	if err != nil {
		return DispatchResult{}, err
	}

	if err := s.authorizeRecipient(req.Actor, event.Recipient); err != nil {
		return DispatchResult{}, err
	}

	key := event.Key()
	thanked, err := s.alreadyThanked(ctx, req, key)
	if err != nil {
		return DispatchResult{}, err
	}
	if thanked {
		return DispatchResult{Recipient: event.Recipient.Name, Duplicate: true}, nil
	}

	res, err := s.dispatch(ctx, req, event, strings.TrimSpace(input.Source))
	if err != nil {
		return DispatchResult{}, err
	}
	s.markSent(req, key)

	if !res.Duplicate {
		s.log.InfoContext(ctx, "thanks sent",
			slog.Int64("actor_id", req.Actor.ID),
			slog.Int64("recipient_id", event.Recipient.ID),
			slog.String("thanks_key", key.String()),
			slog.Bool("notified", res.Notified),
		)
	}
	return res, nil
}

type coded interface {
	ErrorCode() string
}

func (s *Service) observe(ctx context.Context, req Request, input ThankInput, res DispatchResult, err error) {
	var c coded
	switch {
	case err == nil && res.Duplicate:
		requestsTotal.WithLabelValues(outcomeDuplicate).Inc()
	case err == nil:
		requestsTotal.WithLabelValues(outcomeSent).Inc()
	case errors.As(err, &c):
		requestsTotal.WithLabelValues(outcomeRejected).Inc()
		rejectionsTotal.WithLabelValues(c.ErrorCode()).Inc()
	default:
		requestsTotal.WithLabelValues(outcomeError).Inc()
		s.log.ErrorContext(ctx, "thank failed",
			slog.Int64("actor_id", req.Actor.ID),
			slog.String("source", input.Source),
			slog.String("error", err.Error()),
		)
	}
}
