// Package client is the typed Go client for the Shule school platform API.
// It owns the one cross-cutting mechanism every screen shares: attaching
// the stored session token to outgoing requests, decoding the backend's
// {success, data, message} envelope and reacting to expired sessions in
// exactly one place.
package client

import (
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/session"
	"github.com/trezcool/shule/core/user"
)

type (
	Options struct {
		BaseURL    string
		HTTPClient *http.Client
		Store      session.Store
		Logger     core.Logger
		DeviceID   string

		// OnAuthFailure runs after the wrapper has detected an expired
		// session and cleared the store; front ends navigate to the
		// login screen here.
		OnAuthFailure func()

		MaxRetries    int
		RetryBackoff  time.Duration
		UploadTimeout time.Duration
	}

	Client struct {
		baseURL       *url.URL
		http          *http.Client
		store         session.Store
		logger        core.Logger
		deviceID      string
		onAuthFailure func()
		maxRetries    int
		retryBackoff  time.Duration
		uploadTimeout time.Duration
	}
)

func New(opts *Options) (*Client, error) {
	if opts.Store == nil {
		return nil, errors.New("client: a session store is required")
	}

	rawURL := opts.BaseURL
	if rawURL == "" {
		rawURL = core.Conf.BaseURL
	}
	baseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing base URL %s", rawURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: core.Conf.RequestTimeout}
	}
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = core.Conf.MaxRetries
	}
	retryBackoff := opts.RetryBackoff
	if retryBackoff <= 0 {
		retryBackoff = core.Conf.RetryBackoff
	}
	uploadTimeout := opts.UploadTimeout
	if uploadTimeout <= 0 {
		uploadTimeout = core.Conf.UploadTimeout
	}

	return &Client{
		baseURL:       baseURL,
		http:          httpClient,
		store:         opts.Store,
		logger:        opts.Logger,
		deviceID:      opts.DeviceID,
		onAuthFailure: opts.OnAuthFailure,
		maxRetries:    maxRetries,
		retryBackoff:  retryBackoff,
		uploadTimeout: uploadTimeout,
	}, nil
}

// Session returns the stored session; storage failures degrade to an
// empty (logged out) session.
func (c *Client) Session() session.Session {
	s, err := c.store.Read()
	if err != nil {
		if err != session.ErrNoSession {
			c.warn("reading session; treating as logged out", err)
		}
		return session.Session{}
	}
	return s
}

// LaunchRoute is the app-launch decision: where to navigate given
// whatever the store currently holds. Never fails; a fresh or broken
// store resolves to the login route.
func (c *Client) LaunchRoute() user.Route {
	return c.Session().LaunchRoute()
}

func (c *Client) warn(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
