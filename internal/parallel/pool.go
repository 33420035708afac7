package parallel

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// Job is a unit of work executed by a WorkerPool.
// A non-nil return value is reported as the job's fault.
type Job func() error

// PanicError is the fault recorded for a job that panicked.
type PanicError struct {
	// Value is the value passed to panic.
	Value any

	// Stack is the goroutine stack captured at recovery.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("parallel: job panicked: %v", e.Value)
}

// WorkerPool is a fixed-size pool of goroutines.
//
// Each worker owns a queue. ExecuteAll assigns jobs round-robin, and a
// worker whose queue is empty takes queued jobs from its siblings so that
// slow jobs do not leave the rest of the pool idle.
//
// A job that panics is recovered on the worker goroutine; the worker
// stays alive and the panic is returned as a *PanicError for that job.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds per-worker job queues.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately and wait for jobs.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case fn := <-own:
			fn()
		default:
			if fn := p.steal(id); fn != nil {
				fn()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case fn := <-own:
				fn()
			}
		}
	}
}

// drain runs whatever is left in queue.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case fn := <-queue:
			fn()
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// ExecuteAll runs every job on the pool and waits for all of them.
//
// The returned slice has one entry per job, nil for jobs that succeeded.
// A failing or panicking job never prevents the others from running.
// If the pool is closed, every job is reported as ErrPoolClosed.
func (p *WorkerPool) ExecuteAll(jobs []Job) []error {
	errs := make([]error, len(jobs))
	if len(jobs) == 0 {
		return errs
	}
	if !p.running.Load() {
		for i := range errs {
			errs[i] = ErrPoolClosed
		}
		return errs
	}

	var wg sync.WaitGroup
	wg.Add(len(jobs))

	for i, job := range jobs {
		wrapped := func() {
			defer wg.Done()
			errs[i] = run(job)
		}

		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			errs[i] = ErrPoolClosed
			wg.Done()
		}
	}

	wg.Wait()
	return errs
}

// run calls job, converting a panic into a *PanicError.
func run(job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	if job == nil {
		return nil
	}
	return job()
}

// Close stops accepting work, lets queued jobs finish and stops all workers.
// Close is safe to call multiple times, but not while ExecuteAll is running.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
