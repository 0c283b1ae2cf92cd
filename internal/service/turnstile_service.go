package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

const turnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// ChallengeVerifier verifies an anti-automation challenge token
type ChallengeVerifier interface {
	VerifyToken(token, remoteIP string) error
}

// TurnstileService verifies Cloudflare Turnstile tokens
type TurnstileService struct {
	secretKey string
	verifyURL string
	client    *http.Client
}

// NewTurnstileService creates a new Turnstile verification service
func NewTurnstileService() *TurnstileService {
	return &TurnstileService{
		secretKey: os.Getenv("TURNSTILE_SECRET_KEY"),
		verifyURL: turnstileVerifyURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// turnstileResponse represents the response from Cloudflare's siteverify API
type turnstileResponse struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// VerifyToken verifies a Turnstile token against Cloudflare.
// A transport or parse failure is reported as ErrChallengeUnavailable; an
// explicit negative verdict as ErrChallengeRejected.
func (s *TurnstileService) VerifyToken(token, remoteIP string) error {
	if s.secretKey == "" {
		return fmt.Errorf("%w: secret key not configured", ErrChallengeUnavailable)
	}

	if token == "" {
		return fmt.Errorf("%w: token is required", ErrChallengeRejected)
	}

	// Prepare the request
	data := url.Values{}
	data.Set("secret", s.secretKey)
	data.Set("response", token)
	if remoteIP != "" {
		data.Set("remoteip", remoteIP)
	}

	// Send verification request
	resp, err := s.client.PostForm(s.verifyURL, data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrChallengeUnavailable, err)
	}
	defer resp.Body.Close()

	// Parse response
	var result turnstileResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to parse siteverify response: %v", ErrChallengeUnavailable, err)
	}

	if !result.Success {
		return fmt.Errorf("%w: %v", ErrChallengeRejected, result.ErrorCodes)
	}

	return nil
}
