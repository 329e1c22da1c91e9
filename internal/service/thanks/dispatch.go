package thanks

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Wikia/thanksmetoo/internal/domain"
)

// DispatchResult is the outcome of a successful thank. Duplicate is set
// when the thanks had already been recorded and nothing was sent.
type DispatchResult struct {
	Recipient string
	Notified  bool
	Duplicate bool
}

// dispatch records a fresh thanks and hands the notification to the
// transmission channel. Identical concurrent calls in this process share a
// single execution; across processes the unique index on the thanks log
// picks the winner.
func (s *Service) dispatch(ctx context.Context, req Request, event domain.ContributionEvent, source string) (DispatchResult, error) {
	key := event.Key()
	flightKey := strconv.FormatInt(req.Actor.ID, 10) + "|" + key.String()

	var leader bool
	v, err, _ := s.inflight.Do(flightKey, func() (any, error) {
		leader = true
		return s.recordAndNotify(context.WithoutCancel(ctx), req.Actor, event, source)
	})
	if err != nil {
		return DispatchResult{}, err
	}

	res := v.(DispatchResult)
	if !leader {
		res = DispatchResult{Recipient: res.Recipient, Duplicate: true}
	}
	return res, nil
}

func (s *Service) recordAndNotify(ctx context.Context, actor domain.Identity, event domain.ContributionEvent, source string) (DispatchResult, error) {
	res := DispatchResult{Recipient: event.Recipient.Name}

	inserted, err := s.record(ctx, actor, event, source)
	if err != nil {
		return DispatchResult{}, err
	}
	if !inserted {
		res.Duplicate = true
		return res, nil
	}

	res.Notified = s.transmit(ctx, s.notification(actor, event))
	return res, nil
}

// record appends the thanks to the durable log. It reports false when a
// record for the same actor and key already exists.
func (s *Service) record(ctx context.Context, actor domain.Identity, event domain.ContributionEvent, source string) (bool, error) {
	if !s.cfg.LoggingEnabled() {
		return true, nil
	}

	key := event.Key().String()
	var inserted bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.thanksLog.Exists(txCtx, actor.ID, key)
		if err != nil {
			return fmt.Errorf("check thanks log: %w", err)
		}
		if exists {
			return nil
		}

		inserted, err = s.thanksLog.Append(txCtx, domain.DedupRecord{
			ID:          s.newID(),
			ActorID:     actor.ID,
			RecipientID: event.Recipient.ID,
			ThanksKey:   key,
			Source:      source,
			RecordedAt:  s.now(),
		})
		if err != nil {
			return fmt.Errorf("append thanks log: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// transmit sends n and reports whether the channel accepted it. Failures
// are logged and counted, never returned.
func (s *Service) transmit(ctx context.Context, n domain.Notification) bool {
	if err := s.notifier.Send(ctx, n); err != nil {
		terr := &domain.TransmissionError{Channel: s.notifier.Name(), Err: err}
		transmissionFailures.WithLabelValues(terr.Channel).Inc()
		s.log.WarnContext(ctx, "thanks notification not sent",
			slog.String("thanks_key", n.ThanksKey),
			slog.String("type", n.Type.String()),
			slog.String("error", terr.Error()),
		)
		return false
	}
	return true
}

func (s *Service) notification(actor domain.Identity, event domain.ContributionEvent) domain.Notification {
	return domain.Notification{
		Type:       domain.NotificationTypeFor(event),
		Agent:      s.party(actor),
		Recipient:  s.party(event.Recipient),
		TargetText: event.Target.DisplayText,
		TargetURL:  event.Target.URL,
		ThanksKey:  event.Key().String(),
	}
}

func (s *Service) party(id domain.Identity) domain.NotificationParty {
	return domain.NotificationParty{
		ID:         id.ID,
		Name:       id.Name,
		ProfileURL: s.links.ProfileURL(id.Name),
	}
}
