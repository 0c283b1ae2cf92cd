// Package client implements the contact form submission flow against the
// contact API: presence validation, challenge token acquisition, a single
// POST, and user-facing outcome handling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aversacc/avers-site/internal/api/dto/common"
)

const (
	successMessage = "Thank you! Your message has been sent."
	genericFailure = "Something went wrong. Please try again."
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission has not settled yet. The call is a no-op.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// TokenSource produces a challenge token, standing in for the Turnstile
// widget. Implementations are consumed once per submission.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns a fixed, pre-obtained token
type StaticTokenSource string

func (s StaticTokenSource) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

// Client submits contact forms to the API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTokenSource sets the challenge token source. Without one the client
// submits tokenless and lets the server's policy decide.
func WithTokenSource(source TokenSource) Option {
	return func(c *Client) { c.tokens = source }
}

// New creates a new contact API client
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type submitPayload struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Message        string `json:"message"`
	TurnstileToken string `json:"turnstileToken,omitempty"`
}

// Submit performs exactly one submission attempt for the given form.
// The in-flight flag is set before any network activity and released on
// every exit path; a concurrent call returns ErrSubmissionInFlight without
// touching the form. The final Result is recorded on the form and returned.
func (c *Client) Submit(ctx context.Context, form *Form) (Result, error) {
	name, email, message, ok := form.begin()
	if !ok {
		return Result{}, ErrSubmissionInFlight
	}

	result := c.submit(ctx, name, email, message)
	form.finish(result)
	return result, nil
}

func (c *Client) submit(ctx context.Context, name, email, message string) Result {
	// Presence validation happens before any network call
	if name == "" || email == "" || message == "" {
		return Result{Outcome: OutcomeFailure, UserMessage: "Please fill in all fields."}
	}

	var token string
	if c.tokens != nil {
		t, err := c.tokens.Token(ctx)
		if err != nil {
			return Result{Outcome: OutcomeFailure, UserMessage: "Verification failed. Please try again."}
		}
		token = t
	}

	body, err := json.Marshal(submitPayload{
		Name:           name,
		Email:          email,
		Message:        message,
		TurnstileToken: token,
	})
	if err != nil {
		return Result{Outcome: OutcomeFailure, UserMessage: genericFailure}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/contact/submit", bytes.NewReader(body))
	if err != nil {
		return Result{Outcome: OutcomeFailure, UserMessage: genericFailure}
	}
	req.Header.Set("Content-Type", "application/json")

	// No retries: exactly one request per Submit call
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Outcome: OutcomeFailure, UserMessage: genericFailure}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Outcome: OutcomeFailure, UserMessage: failureMessage(resp)}
	}

	return Result{Outcome: OutcomeSuccess, UserMessage: successMessage}
}

// failureMessage derives a user-facing message from the response body,
// falling back to a generic one
func failureMessage(resp *http.Response) string {
	var envelope common.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil &&
		envelope.Error != nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return fmt.Sprintf("%s (status %d)", genericFailure, resp.StatusCode)
}
