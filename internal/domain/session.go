package domain

// SessionFlags is the per-session flag store of the requesting actor.
// Implementations are scoped to one session and safe for concurrent use.
type SessionFlags interface {
	Has(key string) bool
	Set(key string)
}

// NopSessionFlags is a session that remembers nothing. Used for callers
// without a browser session, such as the CLI.
type NopSessionFlags struct{}

func (NopSessionFlags) Has(string) bool { return false }
func (NopSessionFlags) Set(string)      {}
