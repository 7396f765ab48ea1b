// Package worker runs background tasks on a fixed set of goroutines.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var (
	// ErrPoolClosed is returned by Submit after Shutdown has started.
	ErrPoolClosed = errors.New("worker pool closed")
	// ErrQueueFull is returned by Submit when no queue slot is free.
	ErrQueueFull = errors.New("worker queue full")
)

// Task is a background job.
type Task func(ctx context.Context) error

// Pool executes submitted tasks on a fixed number of workers. Tasks already
// queued when Shutdown is called still run to completion.
type Pool struct {
	ctx   context.Context
	queue chan Task
	wg    sync.WaitGroup
	log   *slog.Logger

	mu      sync.RWMutex
	closing bool
}

// NewPool starts size workers with room for queueSize pending tasks.
// Every task receives ctx.
func NewPool(ctx context.Context, size, queueSize int, log *slog.Logger) *Pool {
	size = max(size, 1)
	p := &Pool{
		ctx:   ctx,
		queue: make(chan Task, max(queueSize, 0)),
		log:   log.With("component", "worker"),
	}
	for range size {
		p.wg.Add(1)
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	defer p.wg.Done()
	for task := range p.queue {
		if err := task(p.ctx); err != nil {
			p.log.Error("worker_task_failed", "error_message", err.Error())
		}
	}
}

// Submit enqueues t without blocking.
func (p *Pool) Submit(t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closing {
		p.log.Warn("worker_task_dropped", "reason", "shutdown")
		return ErrPoolClosed
	}
	select {
	case p.queue <- t:
		return nil
	default:
		p.log.Warn("worker_task_dropped", "reason", "queue_full")
		return ErrQueueFull
	}
}

// Shutdown stops accepting tasks and waits for the queued ones to finish or
// for ctx to expire.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closing {
		p.closing = true
		close(p.queue)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
