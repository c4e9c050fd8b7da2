// Package pool provides the bounded executor shared by all pipeline stages.
//
// The executor may be asked to run jobs that submit further jobs to itself:
// the outermost pipeline job for a turn occupies a slot while it waits on
// the parse sub-jobs it submits. The pool therefore always exposes one slot
// more than the configured worker count, so at least one slot is free for a
// nested submission regardless of how busy the configured workers are.
// With only the configured slots, a worker count of one would deadlock:
// the outer job holds the only slot while waiting for a child that can
// never be scheduled.
package pool

import (
	"context"
	"sync/atomic"
)

// Pool is a bounded executor. Its lifetime spans the whole process; it is
// never recreated per REPL turn.
type Pool struct {
	workers int
	slots   chan struct{}

	submitted atomic.Int64
	completed atomic.Int64
}

// Handle tracks one submitted job.
type Handle struct {
	done chan struct{}
	err  error
}

// Wait blocks until the job finishes and returns its error.
func (h *Handle) Wait() error {
	<-h.done
	return h.err
}

// New creates a pool with the given worker count.
// Counts below one are clamped to one, so the pool always exposes at least
// two usable slots and nested submission can never self-deadlock.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		slots:   make(chan struct{}, workers+1),
	}
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// Slots returns the number of usable execution slots (workers + 1).
func (p *Pool) Slots() int {
	return cap(p.slots)
}

// Submit schedules a job, blocking the submitter only while no slot is
// free. The returned handle reports the job's completion and error. The
// job runs on its own goroutine and may itself call Submit and wait on the
// nested handle.
//
// Submit fails only when ctx is cancelled while waiting for a slot.
func (p *Pool) Submit(ctx context.Context, job func(context.Context) error) (*Handle, error) {
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	p.submitted.Add(1)
	h := &Handle{done: make(chan struct{})}

	go func() {
		defer func() {
			<-p.slots
			p.completed.Add(1)
			close(h.done)
		}()
		h.err = job(ctx)
	}()

	return h, nil
}

// Submitted returns the total number of jobs accepted by the pool.
func (p *Pool) Submitted() int64 {
	return p.submitted.Load()
}

// Completed returns the total number of jobs that have finished.
func (p *Pool) Completed() int64 {
	return p.completed.Load()
}
