package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/trapit/trapit/pkg/slogx"
)

const defaultResendBaseURL = "https://api.resend.com"

// APIError is a non-2xx answer from the mail API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mail api returned %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether retrying the request may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

type ResendConfig struct {
	APIKey string
	From   string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
	TTL     time.Duration
}

// ResendNotifier sends reset codes through the Resend HTTP API.
type ResendNotifier struct {
	apiKey  string
	from    string
	baseURL string
	ttl     time.Duration
	client  *http.Client
}

func NewResendNotifier(cfg ResendConfig) *ResendNotifier {
	base := cfg.BaseURL
	if base == "" {
		base = defaultResendBaseURL
	}
	return &ResendNotifier{
		apiKey:  cfg.APIKey,
		from:    cfg.From,
		baseURL: base,
		ttl:     cfg.TTL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (n *ResendNotifier) SendOTP(ctx context.Context, email, code string) error {
	body, err := renderOTP(code, ttlMinutes(n.ttl))
	if err != nil {
		return err
	}

	b, err := json.Marshal(sendRequest{
		From:    fmt.Sprintf("TrapIT <%s>", n.from),
		To:      []string{email},
		Subject: otpSubject,
		HTML:    body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/emails", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &APIError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(msg))}
	}

	slogx.FromContext(ctx).Debug("otp email sent", slog.String("to", email), slog.String("transport", "resend"))
	return nil
}
