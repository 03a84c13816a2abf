// Package admin gates administrative bot features behind a static allowlist.
package admin

// Allowlist is a static set of Telegram user IDs permitted to invoke admin
// actions. It is stateless: callers must re-check membership per invocation.
type Allowlist map[int64]struct{}

// NewAllowlist builds an allowlist from configured identifiers.
func NewAllowlist(ids []int64) Allowlist {
	set := make(Allowlist, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}

// Allowed reports whether the user may invoke admin actions.
func (a Allowlist) Allowed(userID int64) bool {
	_, ok := a[userID]
	return ok
}

// Len reports the number of configured administrators.
func (a Allowlist) Len() int {
	return len(a)
}
