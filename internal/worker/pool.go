// Package worker runs the per-source segmentation jobs. Segmenters are
// pure functions of their input text, so the pool needs no coordination
// beyond fan-out and an ordered collection of results.
package worker

import (
	"context"
	"sync"
)

// Job is one unit of work
type Job interface {
	Run(ctx context.Context) Result
}

// Result is what a job produces
type Result interface {
	Failed() error
}

// Pool fans jobs out to a fixed number of goroutines
type Pool struct {
	workers int
	jobs    chan Job
	results chan Result
	wg      sync.WaitGroup
}

// NewPool creates a pool with the given worker count (minimum one)
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		jobs:    make(chan Job, workers),
		results: make(chan Result, workers),
	}
}

// Start launches the workers. Each drains the job queue until it closes
// or the context is canceled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					select {
					case p.results <- job.Run(ctx):
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}
}

// Submit queues a job; it blocks once the queue is full
func (p *Pool) Submit(ctx context.Context, job Job) {
	select {
	case <-ctx.Done():
	case p.jobs <- job:
	}
}

// CloseJobs signals that no further jobs will be submitted
func (p *Pool) CloseJobs() {
	close(p.jobs)
}

// Collect drains results until every worker has finished. Run submission
// in a separate goroutine so collection keeps the result channel moving.
func (p *Pool) Collect() []Result {
	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	var results []Result
	for r := range p.results {
		results = append(results, r)
	}
	return results
}
