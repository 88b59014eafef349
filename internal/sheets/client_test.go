package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second)
}

func TestGetDecodesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ActionGetSummary, r.URL.Query().Get("action"))
		w.Write([]byte(`{"data": {"total": 42}}`))
	})

	var out struct {
		Total int `json:"total"`
	}
	require.NoError(t, c.Get(context.Background(), ActionGetSummary, &out))
	assert.Equal(t, 42, out.Total)
}

func TestGetEnvelopeErrorIsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": null, "error": "Script function not found: getSummary"}`))
	})

	err := c.Get(context.Background(), ActionGetSummary, nil)
	require.Error(t, err)
	assert.Equal(t, "The booking sheet is being updated. Please try again in a minute.", Friendly(err))
}

func TestGetRetriesThenSucceeds(t *testing.T) {
	attempts := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"data": [1, 2, 3]}`))
	})

	var out []int
	require.NoError(t, c.Get(context.Background(), ActionGetDetails, &out))
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestGetGivesUpAfterRetries(t *testing.T) {
	attempts := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.Get(context.Background(), ActionGetDetails, nil)
	require.Error(t, err)
	assert.Equal(t, 3, attempts, "one try plus two retries")

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestGetHonorsContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.Get(ctx, ActionGetDetails, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPostMergesAction(t *testing.T) {
	var body map[string]interface{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"data": {"ok": true}}`))
	})

	err := c.Post(context.Background(), ActionSubmitBooking,
		map[string]interface{}{"guest_name": "Ramesh Kumar"}, nil)
	require.NoError(t, err)
	assert.Equal(t, ActionSubmitBooking, body["action"])
	assert.Equal(t, "Ramesh Kumar", body["guest_name"])
}

func TestPostDoesNotRetry(t *testing.T) {
	attempts := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.Post(context.Background(), ActionSubmitBooking, nil, nil)
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestFriendlyErrorPatterns(t *testing.T) {
	cases := map[string]string{
		"Service invoked too many times": "Too many requests to the booking sheet. Please wait a moment and retry.",
		"Authorization is required":      "The booking sheet connection expired. Contact the administrator.",
		"sheet API unreachable: dial":    "Cannot reach the booking sheet. Check your internet connection.",
		"context deadline exceeded":      "The booking sheet took too long to respond. Please retry.",
		"some novel failure":             "Something went wrong talking to the booking sheet.",
	}
	for raw, want := range cases {
		assert.Equal(t, want, Friendly(FriendlyError(errors.New(raw))), raw)
	}

	assert.NoError(t, FriendlyError(nil))
	assert.Empty(t, Friendly(nil))
}
