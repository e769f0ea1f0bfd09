// Package parallel runs batches of independent jobs on a fixed set of
// goroutines.
package parallel

import (
	"context"
	"runtime"
	"sync"
)

// Pool spreads indexed jobs over per-worker queues. A worker whose queue
// runs dry steals from the others, which keeps the batch balanced when some
// jobs are slower than others.
//
// A Pool holds no goroutines between batches, so the zero value (one worker
// per GOMAXPROCS) is ready to use and there is nothing to close.
type Pool struct {
	workers int
}

// New returns a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	return &Pool{workers: workers}
}

// Workers returns the number of workers a batch runs on.
func (p *Pool) Workers() int {
	if p == nil || p.workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return p.workers
}

// Run calls fn(i) for every i in [0, n) and waits for all calls to return.
// After the first error, or once ctx is done, the remaining jobs are
// skipped and that error is returned.
func (p *Pool) Run(ctx context.Context, n int, fn func(i int) error) error {
	if n <= 0 {
		return ctx.Err()
	}
	workers := min(p.Workers(), n)

	// Jobs are dealt round-robin, so every queue is filled before any
	// worker starts and a closed queue means "no more work here".
	queues := make([]chan int, workers)
	for w := range queues {
		queues[w] = make(chan int, n/workers+1)
	}
	for i := range n {
		queues[i%workers] <- i
	}
	for _, q := range queues {
		close(q)
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		go func() {
			defer wg.Done()
			for {
				i, ok := next(queues, w)
				if !ok || ctx.Err() != nil {
					return
				}
				if err := fn(i); err != nil {
					cancel(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	return context.Cause(ctx)
}

// next takes a job from the worker's own queue, or steals one.
func next(queues []chan int, own int) (int, bool) {
	if i, ok := <-queues[own]; ok {
		return i, true
	}
	for k := 1; k < len(queues); k++ {
		if i, ok := <-queues[(own+k)%len(queues)]; ok {
			return i, true
		}
	}
	return 0, false
}
