package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const resendSendURL = "https://api.resend.com/emails"

// ContactMailer dispatches a contact form submission as a transactional email
type ContactMailer interface {
	SendContactEmail(name, email, message string) (json.RawMessage, error)
}

// MailerService sends transactional email through the Resend API
type MailerService struct {
	apiKey  string
	from    string
	to      string
	sendURL string
	client  *http.Client
}

// NewMailerService creates a new mailer service
func NewMailerService() *MailerService {
	from := os.Getenv("CONTACT_FROM")
	if from == "" {
		from = "Avers Financial <contact@aversacc.com>"
	}
	to := os.Getenv("CONTACT_TO")
	if to == "" {
		to = "aversacc@gmail.com"
	}

	return &MailerService{
		apiKey:  os.Getenv("RESEND_API_KEY"),
		from:    from,
		to:      to,
		sendURL: resendSendURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// resendEmail represents a Resend send-email request
type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html,omitempty"`
}

// SendContactEmail relays a contact form submission to the site owner.
// The provider's response payload is returned verbatim on success.
func (s *MailerService) SendContactEmail(name, email, message string) (json.RawMessage, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("resend API key not configured")
	}

	payload := resendEmail{
		From:    s.from,
		To:      []string{s.to},
		ReplyTo: email,
		Subject: fmt.Sprintf("New Contact Form Submission from %s", name),
		Text:    fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", name, email, message),
		HTML: fmt.Sprintf(
			"<h2>New Contact Form Submission</h2>\n"+
				"<p><strong>Name:</strong> %s</p>\n"+
				"<p><strong>Email:</strong> %s</p>\n"+
				"<p><strong>Message:</strong> %s</p>",
			escapeHTML(name),
			escapeHTML(email),
			escapeHTML(message),
		),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.sendURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create resend request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read resend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, body)
	}

	return json.RawMessage(body), nil
}

// escapeHTML escapes HTML special characters in user-supplied field values
func escapeHTML(s string) string {
	replacer := map[rune]string{
		'&':  "&amp;",
		'<':  "&lt;",
		'>':  "&gt;",
		'"':  "&quot;",
		'\'': "&#39;",
	}

	result := ""
	for _, char := range s {
		if replacement, ok := replacer[char]; ok {
			result += replacement
		} else {
			result += string(char)
		}
	}
	return result
}
