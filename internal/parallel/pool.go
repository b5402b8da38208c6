// Package parallel splits row-oriented image work across goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// bandsPerWorker controls how finely [0,n) is split. A few bands per
// worker keeps goroutines busy when rows take uneven time.
const bandsPerWorker = 4

// Pool is a fixed set of worker goroutines that process bands of rows.
//
// A nil *Pool is valid and runs every band on the calling goroutine.
//
// Thread safety: Run may be called from several goroutines at once.
type Pool struct {
	workers int
	queue   chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu orders dispatch in Run before close(done) in Close, so every
	// queued band is seen by a worker's final drain.
	mu sync.RWMutex
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		queue:   make(chan func(), workers*bandsPerWorker),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			p.drain()
			return
		case work := <-p.queue:
			work()
		}
	}
}

// drain executes whatever is left in the queue.
func (p *Pool) drain() {
	for {
		select {
		case work := <-p.queue:
			work()
		default:
			return
		}
	}
}

// Run calls fn over disjoint bands [lo, hi) covering [0, n) and waits for
// all of them. Bands run inline when p is nil, closed, or has one worker.
func (p *Pool) Run(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.workers == 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	bands := min(n, p.workers*bandsPerWorker)
	size := (n + bands - 1) / bands

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		wg.Add(1)
		p.queue <- func() {
			defer wg.Done()
			fn(lo, hi)
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// IsRunning reports whether the pool still dispatches to its workers.
func (p *Pool) IsRunning() bool {
	return p != nil && p.running.Load()
}

// Close stops the workers after they finish queued bands. Later Run calls
// execute inline. Close is safe to call more than once.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}
