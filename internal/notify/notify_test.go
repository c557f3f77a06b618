package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/geodash/internal/core"
)

func testReport() core.ScoreReport {
	return core.ScoreReport{
		Action:    core.ReportActionGameScore,
		GameID:    "geodash",
		Score:     150,
		HighScore: 200,
		UserID:    "u42",
	}
}

func TestRegisteredKinds(t *testing.T) {
	want := []string{"log", "nop", "webhook", "websocket"}
	got := List()
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("List()[%d] = %q, want %q", i, got[i].Kind, k)
		}
		if got[i].Description == "" {
			t.Errorf("kind %q has no description", k)
		}
	}
}

func TestCreateUnknownKind(t *testing.T) {
	_, err := Create("carrier-pigeon", Options{})
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Create() error = %v, want ErrUnknownKind", err)
	}
}

func TestCreateRejectsBadURL(t *testing.T) {
	tests := []struct {
		kind string
		url  string
	}{
		{"webhook", ""},
		{"webhook", "ws://host/x"},
		{"websocket", "http://host/x"},
		{"websocket", "::bad"},
	}

	for _, tt := range tests {
		t.Run(tt.kind+" "+tt.url, func(t *testing.T) {
			if _, err := Create(tt.kind, Options{URL: tt.url}); err == nil {
				t.Error("Create() accepted invalid URL")
			}
		})
	}
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLog(log.New(&buf))

	if err := n.Notify(context.Background(), testReport()); err != nil {
		t.Fatalf("Notify() failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"score report", "score=150", "highScore=200", "user=u42"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestWebhookDelivers(t *testing.T) {
	var (
		gotBody   core.ScoreReport
		gotAuth   string
		gotMethod string
		gotType   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n, err := NewWebhook(Options{URL: srv.URL, Token: "secret"})
	if err != nil {
		t.Fatalf("NewWebhook() failed: %v", err)
	}
	if err := n.Notify(context.Background(), testReport()); err != nil {
		t.Fatalf("Notify() failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotType != "application/json" {
		t.Errorf("Content-Type = %q", gotType)
	}
	if gotBody != testReport() {
		t.Errorf("body = %+v, want %+v", gotBody, testReport())
	}
}

func TestWebhookPayloadShape(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&raw)
	}))
	defer srv.Close()

	n, _ := NewWebhook(Options{URL: srv.URL})
	report := core.ScoreReport{Action: "game_score", Score: 30, HighScore: 40}
	if err := n.Notify(context.Background(), report); err != nil {
		t.Fatalf("Notify() failed: %v", err)
	}

	if raw["action"] != "game_score" || raw["score"] != float64(30) || raw["highScore"] != float64(40) {
		t.Errorf("payload = %v", raw)
	}
	if _, ok := raw["userId"]; ok {
		t.Error("empty userId should be omitted")
	}
}

func TestWebhookStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	n, _ := NewWebhook(Options{URL: srv.URL})
	err := n.Notify(context.Background(), testReport())
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Errorf("Notify() error = %v, want 401 StatusError", err)
	}
}

func TestWebSocketDelivers(t *testing.T) {
	upgrader := websocket.Upgrader{}
	received := make(chan core.ScoreReport, 1)
	auth := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth <- r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var rep core.ScoreReport
		if err := conn.ReadJSON(&rep); err == nil {
			received <- rep
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	n, err := NewWebSocket(Options{URL: url, Token: "tok"})
	if err != nil {
		t.Fatalf("NewWebSocket() failed: %v", err)
	}
	if err := n.Notify(context.Background(), testReport()); err != nil {
		t.Fatalf("Notify() failed: %v", err)
	}

	select {
	case rep := <-received:
		if rep != testReport() {
			t.Errorf("received %+v, want %+v", rep, testReport())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no frame received")
	}
	if got := <-auth; got != "Bearer tok" {
		t.Errorf("Authorization = %q", got)
	}
}

func TestWebSocketDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	n, _ := NewWebSocket(Options{URL: "ws" + strings.TrimPrefix(srv.URL, "http")})
	if err := n.Notify(context.Background(), testReport()); err == nil {
		t.Error("Notify() succeeded against a non-websocket endpoint")
	}
}

// recorder is a notifier that records reports and can block until released.
type recorder struct {
	mu      sync.Mutex
	reports []core.ScoreReport
	gate    chan struct{}
	err     error
}

func (r *recorder) Notify(ctx context.Context, rep core.ScoreReport) error {
	if r.gate != nil {
		select {
		case <-r.gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, rep)
	return r.err
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reports)
}

func TestAsyncDeliversInOrder(t *testing.T) {
	rec := &recorder{}
	a := NewAsync(rec, 8, time.Second, log.New(io.Discard))

	for i := 1; i <= 5; i++ {
		if err := a.Notify(context.Background(), core.ScoreReport{Score: i}); err != nil {
			t.Fatalf("Notify(%d) failed: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.Close(ctx); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	if rec.count() != 5 {
		t.Fatalf("delivered %d reports, want 5", rec.count())
	}
	for i, rep := range rec.reports {
		if rep.Score != i+1 {
			t.Errorf("report %d has score %d", i, rep.Score)
		}
	}
}

func TestAsyncDropsWhenFull(t *testing.T) {
	rec := &recorder{gate: make(chan struct{})}
	a := NewAsync(rec, 1, time.Second, nil)

	// The worker takes the first report and blocks on the gate; the second
	// fills the queue.
	if err := a.Notify(context.Background(), core.ScoreReport{Score: 1}); err != nil {
		t.Fatalf("first Notify() failed: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		err := a.Notify(context.Background(), core.ScoreReport{Score: 2})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("queue never accepted a second report: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := a.Notify(context.Background(), core.ScoreReport{Score: 3}); !errors.Is(err, ErrQueueFull) {
		t.Errorf("Notify() on full queue = %v, want ErrQueueFull", err)
	}

	close(rec.gate)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.Close(ctx); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if rec.count() != 2 {
		t.Errorf("delivered %d reports, want 2", rec.count())
	}
}

func TestAsyncClosed(t *testing.T) {
	a := NewAsync(Nop{}, 1, time.Second, nil)
	if err := a.Close(context.Background()); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := a.Notify(context.Background(), testReport()); !errors.Is(err, ErrClosed) {
		t.Errorf("Notify() after Close = %v, want ErrClosed", err)
	}
	// Second close is safe
	if err := a.Close(context.Background()); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestAsyncLogsDeliveryErrors(t *testing.T) {
	var buf bytes.Buffer
	var mu sync.Mutex
	logger := log.New(&lockedWriter{w: &buf, mu: &mu})

	a := NewAsync(&recorder{err: errors.New("boom")}, 1, time.Second, logger)
	_ = a.Notify(context.Background(), testReport())
	_ = a.Close(context.Background())

	mu.Lock()
	defer mu.Unlock()
	if !strings.Contains(buf.String(), "score delivery failed") {
		t.Errorf("log = %q, want delivery failure", buf.String())
	}
}

func TestBuild(t *testing.T) {
	a, err := Build("nop", Options{}, 4)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	defer a.Close(context.Background())

	if _, err := Build("smoke-signal", Options{}, 4); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Build() error = %v, want ErrUnknownKind", err)
	}
}

type lockedWriter struct {
	w  io.Writer
	mu *sync.Mutex
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
