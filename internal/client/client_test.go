package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingTokenSource struct{}

func (failingTokenSource) Token(ctx context.Context) (string, error) {
	return "", errors.New("widget did not load")
}

func newContactAPIStub(t *testing.T, status int, body string, requests *[]submitPayload) *httptest.Server {
	t.Helper()
	var mu sync.Mutex
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/contact/submit", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var payload submitPayload
		require.NoError(t, json.Unmarshal(raw, &payload))

		mu.Lock()
		*requests = append(*requests, payload)
		mu.Unlock()

		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestSubmit_Success(t *testing.T) {
	var requests []submitPayload
	ts := newContactAPIStub(t, http.StatusOK,
		`{"success":true,"data":{"message":"sent","email":{"id":"x"}}}`, &requests)
	defer ts.Close()

	c := New(ts.URL, WithTokenSource(StaticTokenSource("tok-1")))
	form := &Form{Name: "Jane", Email: "jane@x.com", Message: "Hi"}

	result, err := c.Submit(context.Background(), form)
	require.NoError(t, err)
	require.Equal(t, OutcomeSuccess, result.Outcome)
	require.Equal(t, successMessage, result.UserMessage)

	// Exactly one request, carrying the token
	require.Len(t, requests, 1)
	require.Equal(t, "tok-1", requests[0].TurnstileToken)

	// All fields cleared on success, flag released
	require.Empty(t, form.Name)
	require.Empty(t, form.Email)
	require.Empty(t, form.Message)
	require.False(t, form.Submitting())
}

func TestSubmit_ServerRejection(t *testing.T) {
	var requests []submitPayload
	ts := newContactAPIStub(t, http.StatusBadRequest,
		`{"success":false,"error":{"code":"BAD_REQUEST","message":"Turnstile verification failed"}}`, &requests)
	defer ts.Close()

	c := New(ts.URL)
	form := &Form{Name: "Jane", Email: "jane@x.com", Message: "Hi"}

	result, err := c.Submit(context.Background(), form)
	require.NoError(t, err)
	require.Equal(t, OutcomeFailure, result.Outcome)
	// Message derived from the response body
	require.Equal(t, "Turnstile verification failed", result.UserMessage)

	// Fields are kept on failure so the user can retry
	require.Equal(t, "Jane", form.Name)
	require.False(t, form.Submitting())
}

func TestSubmit_GenericMessageWhenBodyLacksOne(t *testing.T) {
	var requests []submitPayload
	ts := newContactAPIStub(t, http.StatusInternalServerError, `not json`, &requests)
	defer ts.Close()

	c := New(ts.URL)
	form := &Form{Name: "Jane", Email: "jane@x.com", Message: "Hi"}

	result, err := c.Submit(context.Background(), form)
	require.NoError(t, err)
	require.Equal(t, OutcomeFailure, result.Outcome)
	require.Contains(t, result.UserMessage, genericFailure)
}

func TestSubmit_NetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // closed before use

	c := New(ts.URL)
	form := &Form{Name: "Jane", Email: "jane@x.com", Message: "Hi"}

	result, err := c.Submit(context.Background(), form)
	require.NoError(t, err)
	require.Equal(t, OutcomeFailure, result.Outcome)
	require.False(t, form.Submitting())
}

func TestSubmit_EmptyFieldsNeverReachTheNetwork(t *testing.T) {
	var requests []submitPayload
	ts := newContactAPIStub(t, http.StatusOK, `{}`, &requests)
	defer ts.Close()

	c := New(ts.URL)

	for _, form := range []*Form{
		{Email: "jane@x.com", Message: "Hi"},
		{Name: "Jane", Message: "Hi"},
		{Name: "Jane", Email: "jane@x.com"},
	} {
		result, err := c.Submit(context.Background(), form)
		require.NoError(t, err)
		require.Equal(t, OutcomeFailure, result.Outcome)
	}
	require.Empty(t, requests)
}

func TestSubmit_TokenSourceFailureBlocksLocally(t *testing.T) {
	var requests []submitPayload
	ts := newContactAPIStub(t, http.StatusOK, `{}`, &requests)
	defer ts.Close()

	c := New(ts.URL, WithTokenSource(failingTokenSource{}))
	form := &Form{Name: "Jane", Email: "jane@x.com", Message: "Hi"}

	result, err := c.Submit(context.Background(), form)
	require.NoError(t, err)
	require.Equal(t, OutcomeFailure, result.Outcome)
	require.Empty(t, requests)
}

func TestSubmit_SecondClickWhileInFlightIsNoOp(t *testing.T) {
	release := make(chan struct{})
	firstArrived := make(chan struct{})
	var requestCount int
	var mu sync.Mutex

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requestCount++
		if requestCount == 1 {
			close(firstArrived)
		}
		mu.Unlock()
		<-release
		w.Write([]byte(`{"success":true}`))
	}))
	defer ts.Close()

	c := New(ts.URL)
	form := &Form{Name: "Jane", Email: "jane@x.com", Message: "Hi"}

	type submitOutcome struct {
		result Result
		err    error
	}
	done := make(chan submitOutcome, 1)
	go func() {
		result, err := c.Submit(context.Background(), form)
		done <- submitOutcome{result, err}
	}()

	// Wait for the first request to be in flight, then click again
	<-firstArrived
	_, err := c.Submit(context.Background(), form)
	require.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	first := <-done
	require.NoError(t, first.err)
	require.Equal(t, OutcomeSuccess, first.result.Outcome)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 1, requestCount)
}
