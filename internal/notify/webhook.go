package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/vovakirdan/geodash/internal/core"
)

// Webhook POSTs each report as a JSON body.
type Webhook struct {
	url    string
	token  string
	client *http.Client
}

// NewWebhook creates a webhook notifier. The URL must be http or https.
func NewWebhook(opts Options) (*Webhook, error) {
	u, err := url.Parse(opts.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("notify: webhook needs an http(s) URL, got %q", opts.URL)
	}
	return &Webhook{
		url:    opts.URL,
		token:  opts.Token,
		client: &http.Client{Timeout: opts.timeout()},
	}, nil
}

// Notify sends the report and fails on any non-2xx response.
func (w *Webhook) Notify(ctx context.Context, r core.ScoreReport) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("notify: cannot encode report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if w.token != "" {
		req.Header.Set("Authorization", "Bearer "+w.token)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: webhook request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}

// StatusError is returned when the host answers with a non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("notify: host answered %d %s", e.Code, http.StatusText(e.Code))
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
