package session

import (
	"time"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/user"
)

// Session is the whole of what the client persists between runs:
// the opaque backend token, the profile returned at login and the
// resolved role. One blob, overwritten on every login.
type Session struct {
	Token   string       `json:"token"`
	Profile user.Profile `json:"profile"`
	Role    user.Role    `json:"role"`
	SavedAt time.Time    `json:"saved_at"` // UTC
}

func (s Session) HasToken() bool {
	return s.Token != ""
}

// Complete reports whether the session can authenticate a role screen.
// A token without a profile (or with an unknown role) is a recoverable
// anomaly: callers treat it as logged out, they do not crash.
func (s Session) Complete() bool {
	return s.HasToken() && !s.Profile.Empty() && s.Role.Valid()
}

// LaunchRoute is the app-launch decision: the role home screen for a
// complete session, the login screen for everything else.
func (s Session) LaunchRoute() user.Route {
	if !s.Complete() {
		return user.RouteLogin
	}
	if route, ok := user.HomeRoute(s.Role); ok {
		return route
	}
	return user.RouteLogin
}

// Credentials is the login form, validated client-side before submission.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate() error {
	c.Username = core.CleanString(c.Username, true /* lower */)
	return core.Validate.Struct(c)
}
