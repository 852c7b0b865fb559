package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/scentshop/internal/adapter/mail"
)

// MailDispatcher delivers queued emails concurrently in the background.
// Delivery is best effort: failures are logged, never retried, and never
// surfaced to the request that queued the message.
type MailDispatcher struct {
	sender      mail.Sender
	workers     int
	sendTimeout time.Duration
	logger      *slog.Logger

	jobs   chan mail.Message
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewMailDispatcher constructs the dispatcher worker pool.
func NewMailDispatcher(sender mail.Sender, workers, queueSize int, sendTimeout time.Duration, logger *slog.Logger) *MailDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &MailDispatcher{
		sender:      sender,
		workers:     workers,
		sendTimeout: sendTimeout,
		logger:      logger,
		jobs:        make(chan mail.Message, queueSize),
	}
}

// Start launches background delivery workers.
func (d *MailDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (d *MailDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Enqueue queues a message without blocking. Returns false when the queue is
// full; the message is dropped in that case.
func (d *MailDispatcher) Enqueue(msg mail.Message) bool {
	select {
	case d.jobs <- msg:
		return true
	default:
		d.logger.Warn("mail queue full, dropping message",
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject))
		return false
	}
}

func (d *MailDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-d.jobs:
			d.deliver(ctx, msg)
		}
	}
}

func (d *MailDispatcher) deliver(ctx context.Context, msg mail.Message) {
	sendCtx := ctx
	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, d.sendTimeout)
		defer cancel()
	}
	if err := d.sender.Send(sendCtx, msg); err != nil {
		d.logger.Error("mail delivery failed",
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject),
			slog.String("error", err.Error()))
	}
}
