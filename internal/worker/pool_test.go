package worker

import (
	"context"
	"sync/atomic"
	"testing"
)

type countJob struct {
	counter *atomic.Int64
	fail    bool
}

type countResult struct {
	err error
}

func (r *countResult) GetError() error { return r.err }

func (j *countJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	if j.fail {
		return &countResult{err: context.Canceled}
	}
	return &countResult{}
}

func TestPoolRunsAllJobs(t *testing.T) {
	var counter atomic.Int64

	pool := NewPool(4)
	pool.Start()
	for i := 0; i < 20; i++ {
		pool.Submit(&countJob{counter: &counter})
	}
	results := pool.Wait()

	if counter.Load() != 20 {
		t.Errorf("executed %d jobs, want 20", counter.Load())
	}
	if len(results) != 20 {
		t.Errorf("collected %d results, want 20", len(results))
	}
}

func TestPoolCollectsErrors(t *testing.T) {
	var counter atomic.Int64

	pool := NewPool(2)
	pool.Start()
	pool.Submit(&countJob{counter: &counter})
	pool.Submit(&countJob{counter: &counter, fail: true})
	results := pool.Wait()

	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("got %d failures, want 1", failures)
	}
}

func TestPoolMinimumOneWorker(t *testing.T) {
	var counter atomic.Int64

	pool := NewPool(0)
	pool.Start()
	pool.Submit(&countJob{counter: &counter})
	pool.Wait()

	if counter.Load() != 1 {
		t.Error("pool with zero workers should still run jobs")
	}
}

func TestPoolShutdownStopsWorkers(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	// Submit after shutdown must not block or panic.
	var counter atomic.Int64
	pool.Submit(&countJob{counter: &counter})
	if counter.Load() != 0 {
		t.Error("job ran after shutdown")
	}
}
