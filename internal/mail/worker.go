package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"log/slog"

	gerr "github.com/jekabolt/seminar-booking/internal/errors"
)

// Start starts the worker
func (m *Mailer) Start(ctx context.Context) error {
	if m.ctx != nil && m.cancel != nil {
		return fmt.Errorf("Mailer already started")
	}

	m.ctx, m.cancel = context.WithCancel(ctx)
	go m.worker(m.ctx)
	return nil
}

// Stop stops the worker gracefully
func (m *Mailer) Stop() error {
	if m.cancel == nil {
		return fmt.Errorf("Mailer already stopped or not started")
	}

	m.cancel()
	m.cancel = nil
	m.ctx = nil
	return nil
}

func (m *Mailer) worker(ctx context.Context) {
	ticker := time.NewTicker(m.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case p := <-m.queue:
			m.deliver(ctx, p)
		case <-ticker.C:
			if err := m.handleDeferred(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't handle deferred mails",
					slog.String("err", err.Error()),
				)
			}
		case <-ctx.Done():
			return
		}
	}
}

// deliver sends p once. Rate limited mails are kept for the next tick,
// anything else is logged and dropped.
func (m *Mailer) deliver(ctx context.Context, p pending) {
	err := m.send(ctx, p.msg)
	if err == nil {
		return
	}
	p.attempts++
	if errors.Is(err, gerr.MailApiLimitReached) && p.attempts < maxAttempts {
		m.mu.Lock()
		m.retry = append(m.retry, p)
		m.mu.Unlock()
		return
	}
	slog.Default().ErrorContext(ctx, "can't send mail",
		slog.String("err", err.Error()),
		slog.String("to", p.to),
		slog.Int("attempts", p.attempts),
	)
}

func (m *Mailer) handleDeferred(ctx context.Context) error {
	m.mu.Lock()
	deferred := m.retry
	m.retry = nil
	m.mu.Unlock()

	for i, p := range deferred {
		if err := ctx.Err(); err != nil {
			m.mu.Lock()
			m.retry = append(m.retry, deferred[i:]...)
			m.mu.Unlock()
			return err
		}
		m.deliver(ctx, p)
	}
	return nil
}

func (m *Mailer) deferredCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.retry)
}
