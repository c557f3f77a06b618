// Package notify delivers final scores to an external host.
// Transports register themselves by kind, like game variants do in the
// registry package, and are usually wrapped in Async so the game loop
// never waits on the network.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geodash/internal/core"
)

// ErrUnknownKind is returned by Create for an unregistered transport.
var ErrUnknownKind = errors.New("notify: unknown kind")

// DefaultTimeout bounds a single delivery when Options.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// Options configures a transport.
type Options struct {
	URL     string        // Endpoint for webhook and websocket
	Token   string        // Sent as a bearer token when set
	Timeout time.Duration // Per-delivery timeout
	Logger  *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

func (o Options) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}

// Factory builds a notifier from options.
type Factory func(opts Options) (core.Notifier, error)

// KindInfo describes a registered transport.
type KindInfo struct {
	Kind        string
	Description string
}

type entry struct {
	factory     Factory
	description string
}

var (
	kinds = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a transport factory.
// Panics if a transport with the same kind is already registered.
func Register(kind, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := kinds[kind]; exists {
		panic(fmt.Sprintf("notify: kind %q already registered", kind))
	}
	kinds[kind] = entry{factory: f, description: description}
}

// Create builds the transport registered under kind.
func Create(kind string, opts Options) (core.Notifier, error) {
	mu.RLock()
	e, ok := kinds[kind]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	return e.factory(opts)
}

// List returns every registered transport, sorted by kind.
func List() []KindInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]KindInfo, 0, len(kinds))
	for k, e := range kinds {
		result = append(result, KindInfo{Kind: k, Description: e.description})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})
	return result
}

// Nop discards every report.
type Nop struct{}

// Notify does nothing.
func (Nop) Notify(context.Context, core.ScoreReport) error { return nil }

// Log writes reports to a logger.
type Log struct {
	logger *log.Logger
}

// NewLog creates a notifier that logs each report at info level.
func NewLog(logger *log.Logger) *Log {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Log{logger: logger}
}

// Notify logs the report.
func (l *Log) Notify(_ context.Context, r core.ScoreReport) error {
	l.logger.Info("score report",
		"action", r.Action,
		"game", r.GameID,
		"score", r.Score,
		"highScore", r.HighScore,
		"user", r.UserID,
	)
	return nil
}

func init() {
	Register("nop", "discard reports", func(Options) (core.Notifier, error) {
		return Nop{}, nil
	})
	Register("log", "write reports to the log", func(opts Options) (core.Notifier, error) {
		return NewLog(opts.logger()), nil
	})
	Register("webhook", "POST reports as JSON to --notify-url", func(opts Options) (core.Notifier, error) {
		return NewWebhook(opts)
	})
	Register("websocket", "send reports as a JSON frame to a ws:// URL", func(opts Options) (core.Notifier, error) {
		return NewWebSocket(opts)
	})
}

// Build creates the configured transport wrapped in Async.
func Build(kind string, opts Options, queueSize int) (*Async, error) {
	n, err := Create(kind, opts)
	if err != nil {
		return nil, err
	}
	return NewAsync(n, queueSize, opts.timeout(), opts.logger()), nil
}
