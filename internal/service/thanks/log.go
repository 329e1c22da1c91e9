package thanks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Wikia/thanksmetoo/internal/domain"
)

// Log query directions.
const (
	DirectionGiven    = "given"
	DirectionReceived = "received"
)

const (
	defaultLogLimit = 50
	maxLogLimit     = 500
)

// ListLogInput selects thanks given or received by one user.
type ListLogInput struct {
	User      string
	Direction string
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListLogInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.User) == "" {
		errs = append(errs, domain.FieldError{Field: "user", Message: "required"})
	}
	switch i.Direction {
	case "", DirectionGiven, DirectionReceived:
	default:
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be given or received"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LogItem is one line of the thanks log.
type LogItem struct {
	ID                  uuid.UUID
	ThanksKey           string
	Source              string
	ActorName           string
	ActorProfileURL     string
	RecipientName       string
	RecipientProfileURL string
	RecordedAt          time.Time
}

// ListLog returns the thanks a user gave or received, newest first. The
// direction defaults to given.
func (s *Service) ListLog(ctx context.Context, input ListLogInput) ([]LogItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByName(ctx, strings.TrimSpace(input.User))
	if errors.Is(err, domain.ErrNotFound) {
		return []LogItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	filter := domain.ThanksLogFilter{
		Limit:  clampLimit(input.Limit),
		Offset: input.Offset,
	}
	if input.Direction == DirectionReceived {
		filter.RecipientID = &user.ID
	} else {
		filter.ActorID = &user.ID
	}

	entries, err := s.thanksLog.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list thanks log: %w", err)
	}

	items := make([]LogItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, LogItem{
			ID:                  e.ID,
			ThanksKey:           e.ThanksKey,
			Source:              e.Source,
			ActorName:           e.ActorName,
			ActorProfileURL:     s.links.ProfileURL(e.ActorName),
			RecipientName:       e.RecipientName,
			RecipientProfileURL: s.links.ProfileURL(e.RecipientName),
			RecordedAt:          e.RecordedAt,
		})
	}
	return items, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultLogLimit
	case limit > maxLogLimit:
		return maxLogLimit
	default:
		return limit
	}
}
