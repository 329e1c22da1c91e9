package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SessionFlagPrefix prefixes every session flag written for a thanks key.
const SessionFlagPrefix = "thanks-thanked-"

// ThanksKey is the idempotency key of a thanks: "rev-456" or "log-789".
type ThanksKey struct {
	Kind EventKind
	ID   int64
}

func (k ThanksKey) String() string {
	return fmt.Sprintf("%s-%d", k.Kind, k.ID)
}

// legacyString is the pre-prefix edit form. Only edits have one.
func (k ThanksKey) legacyString() (string, bool) {
	if k.Kind != EventKindEdit {
		return "", false
	}
	return strconv.FormatInt(k.ID, 10), true
}

// SessionKeys returns the session flag names that mark this key as thanked,
// current format first. Edits also resolve to the legacy unprefixed flag
// written by older clients.
func (k ThanksKey) SessionKeys() []string {
	keys := []string{SessionFlagPrefix + k.String()}
	if legacy, ok := k.legacyString(); ok {
		keys = append(keys, SessionFlagPrefix+legacy)
	}
	return keys
}

// ParseThanksKey parses the canonical key form.
func ParseThanksKey(s string) (ThanksKey, error) {
	kind, rawID, ok := strings.Cut(s, "-")
	if !ok {
		return ThanksKey{}, fmt.Errorf("thanks key %q: missing kind", s)
	}
	k := EventKind(kind)
	if !k.IsValid() {
		return ThanksKey{}, fmt.Errorf("thanks key %q: unknown kind %q", s, kind)
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		return ThanksKey{}, fmt.Errorf("thanks key %q: invalid id", s)
	}
	return ThanksKey{Kind: k, ID: id}, nil
}

// DedupRecord is the durable proof that ActorID has thanked ThanksKey.
// Append-only; at most one exists per (ActorID, ThanksKey).
type DedupRecord struct {
	ID          uuid.UUID
	ActorID     int64
	RecipientID int64
	ThanksKey   string
	Source      string
	RecordedAt  time.Time
}

// ThanksLogEntry is a DedupRecord joined with display names.
type ThanksLogEntry struct {
	DedupRecord
	ActorName     string
	RecipientName string
}

// ThanksLogFilter selects records from the thanks log.
// Exactly one of ActorID and RecipientID is expected to be set.
type ThanksLogFilter struct {
	ActorID     *int64
	RecipientID *int64
	Limit       int
	Offset      int
}
