package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

var ErrMailboxClosed = errors.New("mailbox closed")

// Mailbox runs submitted tasks one at a time, in submission order, on a
// single goroutine. Each session owns one, which is what serializes its
// turns and timer actions.
type Mailbox struct {
	name   string
	logger *logrus.Logger
	queue  chan func()
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewMailbox(name string, size int, logger *logrus.Logger) *Mailbox {
	if size <= 0 {
		size = 1
	}
	mb := &Mailbox{
		name:   name,
		logger: logger,
		queue:  make(chan func(), size),
	}

	mb.wg.Add(1)
	go mb.run()

	return mb
}

func (mb *Mailbox) run() {
	defer mb.wg.Done()
	for task := range mb.queue {
		mb.logger.WithField("mailbox", mb.name).Trace("Processing task")
		task()
	}
}

// Submit enqueues fn. It blocks while the queue is full, until ctx is done.
func (mb *Mailbox) Submit(ctx context.Context, fn func()) error {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	if mb.closed {
		return ErrMailboxClosed
	}
	select {
	case mb.queue <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting tasks and waits for the queued ones to finish.
// It must not be called from inside a task. Calling it twice is a no-op.
func (mb *Mailbox) Close() {
	mb.mu.Lock()
	if mb.closed {
		mb.mu.Unlock()
		return
	}
	mb.closed = true
	close(mb.queue)
	mb.mu.Unlock()

	mb.wg.Wait()
}
