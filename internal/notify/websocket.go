package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/geodash/internal/core"
)

// WebSocket dials the host for every report, writes one JSON text frame
// and closes the connection.
type WebSocket struct {
	url     string
	token   string
	timeout time.Duration
	dialer  *websocket.Dialer
}

// NewWebSocket creates a websocket notifier. The URL must be ws or wss.
func NewWebSocket(opts Options) (*WebSocket, error) {
	u, err := url.Parse(opts.URL)
	if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") || u.Host == "" {
		return nil, fmt.Errorf("notify: websocket needs a ws(s) URL, got %q", opts.URL)
	}
	return &WebSocket{
		url:     opts.URL,
		token:   opts.Token,
		timeout: opts.timeout(),
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: opts.timeout(),
		},
	}, nil
}

// Notify delivers the report in a single frame.
func (w *WebSocket) Notify(ctx context.Context, r core.ScoreReport) error {
	header := http.Header{}
	if w.token != "" {
		header.Set("Authorization", "Bearer "+w.token)
	}

	conn, resp, err := w.dialer.DialContext(ctx, w.url, header)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("notify: websocket dial failed (%d): %w", resp.StatusCode, err)
		}
		return fmt.Errorf("notify: websocket dial failed: %w", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(w.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetWriteDeadline(deadline)

	if err := conn.WriteJSON(r); err != nil {
		return fmt.Errorf("notify: websocket write failed: %w", err)
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = conn.WriteControl(websocket.CloseMessage, msg, deadline)
	return nil
}
