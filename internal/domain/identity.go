package domain

// Identity is an actor or recipient as reported by the identity store.
// Anonymous identities have ID 0 and carry the IP address as Name.
type Identity struct {
	ID                int64
	Name              string
	IsAnonymous       bool
	IsBot             bool
	IsBlocked         bool // site-wide block on this wiki
	IsGloballyBlocked bool
}

// Anonymous returns the identity of a logged-out visitor.
func Anonymous(name string) Identity {
	return Identity{Name: name, IsAnonymous: true}
}

// IsRegistered reports whether the identity belongs to an account.
func (i Identity) IsRegistered() bool {
	return !i.IsAnonymous && i.ID > 0
}

// IsBlockedAnywhere reports a local site-wide or a global block.
func (i Identity) IsBlockedAnywhere() bool {
	return i.IsBlocked || i.IsGloballyBlocked
}

// CanReceiveThanks reports whether the identity may be a thanks recipient.
// Bots qualify only when sendToBots is set.
func (i Identity) CanReceiveThanks(sendToBots bool) bool {
	if !i.IsRegistered() {
		return false
	}
	if i.IsBot && !sendToBots {
		return false
	}
	return true
}
