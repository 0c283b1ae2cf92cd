package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestTurnstileService(verifyURL string) *TurnstileService {
	return &TurnstileService{
		secretKey: "test-secret",
		verifyURL: verifyURL,
		client:    &http.Client{Timeout: 2 * time.Second},
	}
}

func TestVerifyToken(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		status   int
		wantErr  error
	}{
		{
			name:    "valid token",
			body:    `{"success":true,"challenge_ts":"2023-01-01T00:00:00Z","hostname":"aversacc.com"}`,
			status:  http.StatusOK,
			wantErr: nil,
		},
		{
			name:    "rejected token",
			body:    `{"success":false,"error-codes":["invalid-input-response"]}`,
			status:  http.StatusOK,
			wantErr: ErrChallengeRejected,
		},
		{
			name:    "unparsable response",
			body:    `<html>upstream error</html>`,
			status:  http.StatusOK,
			wantErr: ErrChallengeUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("siteverify called with method %s, want POST", r.Method)
				}
				if err := r.ParseForm(); err != nil {
					t.Fatalf("failed to parse form: %v", err)
				}
				if got := r.PostForm.Get("secret"); got != "test-secret" {
					t.Errorf("secret = %q, want %q", got, "test-secret")
				}
				if got := r.PostForm.Get("response"); got != "tok-123" {
					t.Errorf("response = %q, want %q", got, "tok-123")
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			svc := newTestTurnstileService(ts.URL)
			err := svc.VerifyToken("tok-123", "1.2.3.4")

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("VerifyToken() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("VerifyToken() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestVerifyToken_ServiceUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // closed before use

	svc := newTestTurnstileService(ts.URL)
	err := svc.VerifyToken("tok-123", "")
	if !errors.Is(err, ErrChallengeUnavailable) {
		t.Fatalf("VerifyToken() error = %v, want ErrChallengeUnavailable", err)
	}
}

func TestVerifyToken_MissingConfig(t *testing.T) {
	svc := &TurnstileService{client: http.DefaultClient}
	if err := svc.VerifyToken("tok-123", ""); !errors.Is(err, ErrChallengeUnavailable) {
		t.Fatalf("missing secret: error = %v, want ErrChallengeUnavailable", err)
	}

	svc = newTestTurnstileService("http://127.0.0.1:0")
	if err := svc.VerifyToken("", ""); !errors.Is(err, ErrChallengeRejected) {
		t.Fatalf("missing token: error = %v, want ErrChallengeRejected", err)
	}
}
