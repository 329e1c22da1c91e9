package thanks

import (
	"context"
	"fmt"

	"github.com/Wikia/thanksmetoo/internal/domain"
)

// alreadyThanked reports whether req's actor has thanked key before. The
// session is consulted first; a session hit never touches the thanks log.
func (s *Service) alreadyThanked(ctx context.Context, req Request, key domain.ThanksKey) (bool, error) {
	if s.thankedInSession(req, key) {
		return true, nil
	}

	thanked, err := s.thankedDurably(ctx, req.Actor.ID, key)
	if err != nil {
		return false, err
	}
	if thanked {
		s.markSent(req, key)
	}
	return thanked, nil
}

func (s *Service) thankedInSession(req Request, key domain.ThanksKey) bool {
	flags := req.session()
	for _, k := range key.SessionKeys() {
		if flags.Has(k) {
			return true
		}
	}
	return false
}

// thankedDurably is the authoritative lookup. With logging disabled there
// is nothing to consult and the answer is always false.
func (s *Service) thankedDurably(ctx context.Context, actorID int64, key domain.ThanksKey) (bool, error) {
	if !s.cfg.LoggingEnabled() {
		return false, nil
	}
	exists, err := s.thanksLog.Exists(ctx, actorID, key.String())
	if err != nil {
		return false, fmt.Errorf("check thanks log: %w", err)
	}
	return exists, nil
}
