package client

import (
	"context"

	"github.com/trezcool/shule/core/user"
)

// Profile fetches the authenticated account from the backend and
// refreshes the stored copy so the next launch sees current data.
func (c *Client) Profile(ctx context.Context) (user.Profile, error) {
	var prof user.Profile
	if err := c.get(ctx, "/users/me", &prof); err != nil {
		return user.Profile{}, err
	}

	if sess, err := c.store.Read(); err == nil && sess.HasToken() {
		sess.Profile = prof
		if err := c.store.Write(sess); err != nil {
			c.warn("caching refreshed profile", err)
		}
	}
	return prof, nil
}

// ChangePassword applies the client-side password policy, then submits.
func (c *Client) ChangePassword(ctx context.Context, cp user.ChangePassword) error {
	sess := c.Session()
	cp.Name = sess.Profile.Name
	cp.Email = sess.Profile.Email.String
	if err := cp.Validate(); err != nil {
		return err
	}
	return c.postJSON(ctx, "/users/password-change", &cp, nil)
}
