package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBrevoURL is the Brevo transactional email endpoint
const DefaultBrevoURL = "https://api.brevo.com/v3/smtp/email"

// Notifier sends a single templated message to one recipient. Fire and
// forget: no retries, no delivery guarantee beyond the transport's.
type Notifier interface {
	Send(recipientEmail, subject, htmlContent, textContent string) error
}

// BrevoNotifier delivers email through the Brevo transactional API
type BrevoNotifier struct {
	apiKey      string
	apiURL      string
	senderName  string
	senderEmail string
	client      *http.Client
}

// NewBrevoNotifier creates a Brevo-backed notifier. apiURL may be empty to
// use the production endpoint.
func NewBrevoNotifier(apiKey, apiURL, senderName, senderEmail string) *BrevoNotifier {
	if apiURL == "" {
		apiURL = DefaultBrevoURL
	}
	return &BrevoNotifier{
		apiKey:      apiKey,
		apiURL:      apiURL,
		senderName:  senderName,
		senderEmail: senderEmail,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type brevoParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoRequest struct {
	Sender      brevoParty   `json:"sender"`
	To          []brevoParty `json:"to"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"htmlContent"`
	TextContent string       `json:"textContent"`
}

// Send posts one email to the Brevo API
func (n *BrevoNotifier) Send(recipientEmail, subject, htmlContent, textContent string) error {
	if n.apiKey == "" {
		return fmt.Errorf("send email to %s: brevo api key not configured", recipientEmail)
	}
	if recipientEmail == "" || subject == "" {
		return fmt.Errorf("send email: missing recipient or subject")
	}

	payload, err := json.Marshal(brevoRequest{
		Sender:      brevoParty{Name: n.senderName, Email: n.senderEmail},
		To:          []brevoParty{{Email: recipientEmail}},
		Subject:     subject,
		HTMLContent: htmlContent,
		TextContent: textContent,
	})
	if err != nil {
		return fmt.Errorf("send email to %s: marshal payload: %w", recipientEmail, err)
	}

	req, err := http.NewRequest(http.MethodPost, n.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("send email to %s: %w", recipientEmail, err)
	}
	req.Header.Set("api-key", n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email to %s: %w", recipientEmail, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("send email to %s: brevo returned %d: %s", recipientEmail, resp.StatusCode, body)
	}
	return nil
}
