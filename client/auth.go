package client

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/session"
	"github.com/trezcool/shule/core/user"
)

var NowFunc = time.Now // mockable

// loginResponse is the login endpoint's envelope data.
type loginResponse struct {
	Token   string       `json:"token"`
	Profile user.Profile `json:"profile"`
	Role    string       `json:"role"`
}

// Login validates the credentials client-side, authenticates against the
// backend and persists the resulting session. The returned session's
// role is the normalized form of whatever string the backend sent; an
// unrecognized role still logs in but will land on the login route.
func (c *Client) Login(ctx context.Context, creds session.Credentials) (session.Session, error) {
	if err := creds.Validate(); err != nil {
		return session.Session{}, err
	}

	var data loginResponse
	if err := c.postJSON(ctx, "/users/login", &creds, &data); err != nil {
		return session.Session{}, err
	}
	if data.Token == "" {
		return session.Session{}, errors.New("backend returned no token")
	}

	role := user.ParseRole(data.Role)
	if !role.Valid() {
		c.warn("unrecognized role from backend", map[string]interface{}{"role": data.Role})
	}

	sess := session.Session{
		Token:   data.Token,
		Profile: data.Profile,
		Role:    role,
		SavedAt: NowFunc().UTC(),
	}
	if err := c.store.Write(sess); err != nil {
		return session.Session{}, errors.Wrap(err, "persisting session")
	}
	return sess, nil
}

// Logout clears the local session. The server is notified best-effort;
// a dead network must never trap the user in a logged-in state.
func (c *Client) Logout(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/users/logout", nil, "")
	if err == nil {
		if resp, derr := c.http.Do(req); derr == nil {
			drain(resp)
		} else {
			c.warn("notifying server of logout", derr)
		}
	}
	return errors.Wrap(c.store.Clear(), "clearing session")
}
