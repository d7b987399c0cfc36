package session

import "errors"

var (
	// errors
	ErrNoSession = errors.New("no session stored")
)

// Store persists the Session across app restarts.
// Implementations live in storage/.
type Store interface {
	// Write stores the session, overwriting any previous one.
	Write(s Session) error
	// Read returns the stored session or ErrNoSession.
	// A partially written session is returned as-is; callers gate on
	// Session.Complete.
	Read() (Session, error)
	// Clear removes the stored session. Clearing an empty store is a no-op.
	Clear() error
}
