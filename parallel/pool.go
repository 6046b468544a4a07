// Package parallel runs work over a fixed set of goroutines and spreads
// splittable index ranges over them.
package parallel

import (
	"runtime"
	"sync"
)

// Pool runs submitted functions on its workers. A pool with one worker runs
// them inline on the caller's goroutine.
type Pool struct {
	wg      sync.WaitGroup
	work    chan func()
	workers int
	close   func()
}

// Start launches numWorkers workers, or GOMAXPROCS workers when
// numWorkers < 1.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{workers: numWorkers, close: func() {}}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.work {
				f()
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

func (p *Pool) Workers() int { return p.workers }

// Go submits f. It blocks while all workers are busy and the queue is
// full. Go must not be called after Close.
func (p *Pool) Go(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Close stops accepting work. Queued functions still run.
func (p *Pool) Close() { p.close() }

// Wait closes the pool and waits for all submitted work to finish.
func (p *Pool) Wait() {
	p.close()
	p.wg.Wait()
}
