package jobs

import "sync"

// RunFunc executes one Job to completion and returns its result value,
// opaque to Pool.
type RunFunc func(Job) any

// Pool is the single-slot producer/consumer rendezvous spec.md §4.8
// describes: the main goroutine publishes one job at a time into a
// shared slot, worker goroutines steal it and run it off the lock, and
// results drain back out in strict job-index order regardless of which
// worker finished first or how long each job took.
type Pool struct {
	mu     sync.Mutex
	cvWork *sync.Cond // signaled when a new job is published
	cvMain *sync.Cond // signaled when the slot empties or a result lands

	job      Job
	haveWork bool
	done     bool

	results map[int]any
	run     RunFunc
}

// NewPool builds a Pool that will run jobs with run.
func NewPool(run RunFunc) *Pool {
	p := &Pool{results: make(map[int]any), run: run}
	p.cvWork = sync.NewCond(&p.mu)
	p.cvMain = sync.NewCond(&p.mu)
	return p
}

// Run drives it to completion across workers goroutines, calling emit
// for each job's result in strictly increasing Index order as results
// become available. Run blocks until every job has been emitted.
func (p *Pool) Run(it *Iterator, workers int, emit func(Job, any)) {
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.workerLoop()
		}()
	}

	total := it.Total()
	nextEmit := it.emitted // jobs already consumed by Skip are never run
	jobsByIndex := make(map[int]Job, 1)
	exhausted := false

	p.mu.Lock()
	for nextEmit < total {
		// Publish the next job once the slot is empty, unless the
		// iterator is already exhausted and we're only draining.
		if !exhausted && !p.haveWork {
			job, ok := it.Next()
			if ok {
				jobsByIndex[job.Index] = job
				p.job = job
				p.haveWork = true
				p.cvWork.Signal()
				continue
			}
			exhausted = true
		}

		if r, have := p.results[nextEmit]; have {
			delete(p.results, nextEmit)
			j := jobsByIndex[nextEmit]
			delete(jobsByIndex, nextEmit)
			p.mu.Unlock()
			emit(j, r)
			p.mu.Lock()
			nextEmit++
			continue
		}

		// Nothing to publish and the next result isn't ready: wait for
		// either a slot-empty or a new-result signal.
		p.cvMain.Wait()
	}
	p.mu.Unlock()

	p.mu.Lock()
	p.done = true
	p.cvWork.Broadcast()
	p.mu.Unlock()
	wg.Wait()
}

// workerLoop is one worker goroutine's body: wait for a job, steal it,
// run it unlocked, publish the result, repeat until the pool shuts down.
func (p *Pool) workerLoop() {
	for {
		p.mu.Lock()
		for !p.haveWork && !p.done {
			p.cvWork.Wait()
		}
		if !p.haveWork && p.done {
			p.mu.Unlock()
			return
		}
		job := p.job
		p.haveWork = false
		p.cvMain.Signal()
		p.mu.Unlock()

		result := p.run(job)

		p.mu.Lock()
		p.results[job.Index] = result
		p.cvMain.Signal()
		p.mu.Unlock()
	}
}
