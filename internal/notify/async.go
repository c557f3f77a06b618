package notify

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geodash/internal/core"
)

var (
	// ErrQueueFull is returned when a report is dropped because the queue is full.
	ErrQueueFull = errors.New("notify: queue full, report dropped")
	// ErrClosed is returned by Notify after Close.
	ErrClosed = errors.New("notify: notifier closed")
)

// Async queues reports and delivers them on a worker goroutine.
// Notify never blocks; delivery errors are logged, not returned.
type Async struct {
	next    core.Notifier
	timeout time.Duration
	logger  *log.Logger

	mu     sync.Mutex
	closed bool
	queue  chan core.ScoreReport
	done   chan struct{}
}

// NewAsync starts a worker delivering to next with a bounded queue.
func NewAsync(next core.Notifier, size int, timeout time.Duration, logger *log.Logger) *Async {
	if size <= 0 {
		size = 1
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &Async{
		next:    next,
		timeout: timeout,
		logger:  logger,
		queue:   make(chan core.ScoreReport, size),
		done:    make(chan struct{}),
	}
	go a.run()
	return a
}

// Notify enqueues the report.
func (a *Async) Notify(_ context.Context, r core.ScoreReport) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return ErrClosed
	}
	select {
	case a.queue <- r:
		return nil
	default:
		return ErrQueueFull
	}
}

func (a *Async) run() {
	defer close(a.done)
	for r := range a.queue {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		if err := a.next.Notify(ctx, r); err != nil {
			a.logger.Warn("score delivery failed", "score", r.Score, "user", r.UserID, "error", err)
		}
		cancel()
	}
}

// Close stops accepting reports and waits for queued ones to be delivered,
// or for ctx to expire.
func (a *Async) Close(ctx context.Context) error {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()

	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
