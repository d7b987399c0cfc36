package client

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/shule/storage/inmemstore"
)

func mockSleep(t *testing.T) *[]time.Duration {
	t.Helper()
	var slept []time.Duration
	orig := sleepFunc
	sleepFunc = func(d time.Duration) { slept = append(slept, d) }
	t.Cleanup(func() { sleepFunc = orig })
	return &slept
}

func Test_getWithRetry_recoversFromServerErrors(t *testing.T) {
	slept := mockSleep(t)

	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			respondJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "oops"})
			return
		}
		respondJSON(w, http.StatusOK, okEnvelope([]string{"finally"}))
	}), inmemstore.New(), nil)

	var out []string
	if err := c.get(context.Background(), "/flaky", &out); err != nil {
		t.Fatalf("get() failed: %v", err)
	}
	assert.Equal(t, []string{"finally"}, out)
	assert.EqualValues(t, 3, calls)
	// exponential backoff: base, then double
	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond}, *slept)
}

func Test_getWithRetry_boundedAttempts(t *testing.T) {
	mockSleep(t)

	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{"success": false, "message": "down"})
	}), inmemstore.New(), nil)

	err := c.get(context.Background(), "/down", nil)
	if err == nil {
		t.Fatal("get() expected error")
	}
	assert.EqualValues(t, 3, calls)

	// the caller sees the last failure, not a retry storm
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("get() error = %v, want *APIError", err)
	}
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Code)
}

func Test_getWithRetry_noRetryOn4xx(t *testing.T) {
	mockSleep(t)

	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		respondJSON(w, http.StatusNotFound, map[string]interface{}{"success": false, "message": "not found"})
	}), inmemstore.New(), nil)

	if err := c.get(context.Background(), "/nope", nil); err == nil {
		t.Fatal("get() expected error")
	}
	assert.EqualValues(t, 1, calls)
}

func Test_postJSON_neverRetries(t *testing.T) {
	mockSleep(t)

	var calls int32
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false, "message": "oops"})
	}), inmemstore.New(), nil)

	if err := c.postJSON(context.Background(), "/writes", map[string]string{"a": "b"}, nil); err == nil {
		t.Fatal("postJSON() expected error")
	}
	assert.EqualValues(t, 1, calls)
}

func Test_getWithRetry_cancelledContext(t *testing.T) {
	mockSleep(t)

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{"success": false})
	}), inmemstore.New(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.get(ctx, "/flaky", nil)
	if err == nil {
		t.Fatal("get() expected error on cancelled context")
	}
}
