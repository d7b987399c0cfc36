package client

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

var sleepFunc = time.Sleep // mockable

// getWithRetry sends a GET with bounded attempts and exponential
// backoff. Only transport errors and 5xx responses are retried; auth
// failures and other 4xx go straight to the caller. GETs are the only
// idempotent calls the client makes, so the policy lives here.
func (c *Client) getWithRetry(ctx context.Context, path string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			sleepFunc(c.retryBackoff << uint(attempt-1))
		}

		req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
		if err != nil {
			return nil, err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode >= 500 && attempt < c.maxRetries-1 {
			drain(resp)
			lastErr = errors.Errorf("server error: %s", resp.Status)
			continue
		}
		return resp, nil
	}
	return nil, errors.Wrapf(lastErr, "GET %s failed after %d attempts", path, c.maxRetries)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(ioutil.Discard, io.LimitReader(resp.Body, 4<<10))
	_ = resp.Body.Close()
}
