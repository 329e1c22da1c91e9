package thanks

import (
	"strings"

	"github.com/Wikia/thanksmetoo/internal/domain"
)

const (
	maxSourceLength = 64

	// SourceSpecialPage marks thanks sent through the confirmation page.
	SourceSpecialPage = "specialpage"
)

// Reference is a loosely-typed pointer at a contribution: exactly one of
// RevisionID and LogID must be set.
type Reference struct {
	RevisionID *int64
	LogID      *int64
}

// EditRef references an edit by revision id.
func EditRef(id int64) Reference { return Reference{RevisionID: &id} }

// ActionRef references a recorded action by log id.
func ActionRef(id int64) Reference { return Reference{LogID: &id} }

// Validate checks that exactly one reference is present.
func (r Reference) Validate() error {
	if errs := r.fieldErrors(); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (r Reference) fieldErrors() []domain.FieldError {
	switch {
	case r.RevisionID == nil && r.LogID == nil:
		return []domain.FieldError{{Field: "rev", Message: "one of rev or log is required"}}
	case r.RevisionID != nil && r.LogID != nil:
		return []domain.FieldError{{Field: "rev", Message: "rev and log are mutually exclusive"}}
	}
	return nil
}

// ThankInput holds the parameters of a thank request.
type ThankInput struct {
	Ref    Reference
	Source string
}

// Validate checks all fields and collects all errors.
func (i ThankInput) Validate() error {
	errs := i.Ref.fieldErrors()
	if len(strings.TrimSpace(i.Source)) > maxSourceLength {
		errs = append(errs, domain.FieldError{Field: "source", Message: "max 64 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
