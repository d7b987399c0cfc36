package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/shule/core/session"
)

// envelope is the backend convention: every endpoint wraps its payload
// in {success, data, message}.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// newRequest builds a request against the base URL with the stored
// token attached as a bearer header. A missing token is not an error:
// the request goes out unauthenticated and protected endpoints reject it.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	u := *c.baseURL
	if i := strings.IndexByte(path, '?'); i >= 0 {
		u.RawQuery = path[i+1:]
		path = path[:i]
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.deviceID != "" {
		req.Header.Set("X-Device-ID", c.deviceID)
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) token() string {
	s, err := c.store.Read()
	if err != nil {
		if err != session.ErrNoSession {
			c.warn("reading session token; sending request unauthenticated", err)
		}
		return ""
	}
	return s.Token
}

// get issues an idempotent GET with the retry policy and decodes the
// envelope data into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	resp, err := c.getWithRetry(ctx, path)
	if err != nil {
		return err
	}
	return c.decode(resp, out)
}

// postJSON issues a POST with a JSON body. Writes are never retried.
func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return errors.Wrapf(err, "encoding %s body", path)
		}
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, &body, "application/json")
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "sending POST %s", path)
	}
	return c.decode(resp, out)
}

// decode reads the response, centralizes the auth-failure reaction and
// unmarshals the envelope data into out (when non-nil).
func (c *Client) decode(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if isAuthFailure(resp.StatusCode) {
		c.expireSession()
		return ErrSessionExpired
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if resp.StatusCode >= 300 {
			return &APIError{Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return errors.Wrap(err, "parsing response envelope")
	}
	if !env.Success || resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Code: resp.StatusCode, Message: msg}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "parsing response data")
		}
	}
	return nil
}

// expireSession clears the store and notifies the front end. Every call
// site gets the same reaction; screens no longer wire their own.
func (c *Client) expireSession() {
	if err := c.store.Clear(); err != nil {
		c.warn("clearing expired session", err)
	}
	if c.onAuthFailure != nil {
		c.onAuthFailure()
	}
}
