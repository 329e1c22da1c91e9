package thanks

import (
	"context"
	"errors"
	"fmt"

	"github.com/Wikia/thanksmetoo/internal/domain"
)

// Resolver error codes.
const (
	CodeInvalidRevision = "thanks-error-invalidrevision"
	CodeRevisionDeleted = "thanks-error-revdeleted"
	CodeNoTitle         = "thanks-error-notitle"
	CodeInvalidLogID    = "thanks-error-invalid-log-id"
	CodeInvalidLogType  = "thanks-error-invalid-log-type"
	CodeLogDeleted      = "thanks-error-log-deleted"
)

// resolve maps a reference to a concrete contribution event. It only reads.
func (s *Service) resolve(ctx context.Context, ref Reference) (domain.ContributionEvent, error) {
	if err := ref.Validate(); err != nil {
		return domain.ContributionEvent{}, err
	}
	if ref.LogID != nil {
		return s.resolveAction(ctx, *ref.LogID)
	}
	return s.resolveEdit(ctx, *ref.RevisionID)
}

func (s *Service) resolveAction(ctx context.Context, logID int64) (domain.ContributionEvent, error) {
	entry, err := s.loadLogEntry(ctx, logID)
	if err != nil {
		return domain.ContributionEvent{}, err
	}

	// Actions that created an edit are thanked as that edit.
	if entry.AssociatedRevID != 0 {
		return s.resolveEdit(ctx, entry.AssociatedRevID)
	}

	if entry.Page == nil {
		return domain.ContributionEvent{}, domain.NewNotFoundError(CodeNoTitle, "The log entry has no target page.")
	}

	recipient, err := s.recipient(ctx, entry.PerformerID, entry.PerformerName)
	if err != nil {
		return domain.ContributionEvent{}, err
	}

	return domain.ContributionEvent{
		Kind:      domain.EventKindAction,
		ID:        entry.ID,
		Recipient: recipient,
		Target:    s.links.TargetRef(*entry.Page),
	}, nil
}

// loadLogEntry fetches a log entry and applies the allow-list and
// visibility rules.
func (s *Service) loadLogEntry(ctx context.Context, logID int64) (*domain.LogEntry, error) {
	if logID <= 0 {
		return nil, domain.NewNotFoundError(CodeInvalidLogID, "Could not find the log entry.")
	}

	entry, err := s.logEntries.GetByID(ctx, logID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFoundError(CodeInvalidLogID, "Could not find the log entry.")
	}
	if err != nil {
		return nil, fmt.Errorf("get log entry: %w", err)
	}

	if !s.cfg.IsLogTypeAllowed(entry.Type) {
		return nil, domain.NewPermissionError(CodeInvalidLogType,
			fmt.Sprintf("Log entries of type %q cannot be thanked.", entry.Type))
	}
	if entry.IsRestricted() {
		return nil, domain.NewNotFoundError(CodeLogDeleted, "The log entry has been deleted or hidden.")
	}
	return entry, nil
}

func (s *Service) resolveEdit(ctx context.Context, revID int64) (domain.ContributionEvent, error) {
	rev, err := s.loadRevision(ctx, revID)
	if err != nil {
		return domain.ContributionEvent{}, err
	}

	if rev.Page == nil {
		return domain.ContributionEvent{}, domain.NewNotFoundError(CodeNoTitle, "The edit has no page.")
	}
	if !rev.HasAuthor() {
		return domain.ContributionEvent{}, &domain.AuthorizationError{Reason: domain.AuthReasonInvalidRecipient}
	}

	recipient, err := s.recipient(ctx, rev.AuthorID, rev.AuthorName)
	if err != nil {
		return domain.ContributionEvent{}, err
	}

	hasPrev, err := s.revisions.HasPredecessor(ctx, rev)
	if err != nil {
		return domain.ContributionEvent{}, fmt.Errorf("find previous revision: %w", err)
	}

	return domain.ContributionEvent{
		Kind:       domain.EventKindEdit,
		ID:         rev.ID,
		Recipient:  recipient,
		Target:     s.links.TargetRef(*rev.Page),
		IsCreation: !hasPrev,
	}, nil
}

func (s *Service) loadRevision(ctx context.Context, revID int64) (*domain.Revision, error) {
	// Id 1 is what clients send for "no such edit".
	if revID <= 0 || revID == domain.InvalidRevisionID {
		return nil, domain.NewNotFoundError(CodeInvalidRevision, "Could not find the edit.")
	}

	rev, err := s.revisions.GetByID(ctx, revID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFoundError(CodeInvalidRevision, "Could not find the edit.")
	}
	if err != nil {
		return nil, fmt.Errorf("get revision: %w", err)
	}

	if rev.IsDeleted(domain.DeletedText) {
		return nil, domain.NewPermissionError(CodeRevisionDeleted, "The edit has been deleted.")
	}
	return rev, nil
}

// recipient loads the author of a contribution. Anonymous authors are
// returned as such and rejected later by the guard.
func (s *Service) recipient(ctx context.Context, id int64, name string) (domain.Identity, error) {
	if id <= 0 {
		return domain.Anonymous(name), nil
	}
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Identity{}, &domain.AuthorizationError{Reason: domain.AuthReasonInvalidRecipient, Recipient: name}
	}
	if err != nil {
		return domain.Identity{}, fmt.Errorf("get recipient: %w", err)
	}
	return user, nil
}
