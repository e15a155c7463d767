package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type stubResult struct {
	err error
}

func (r *stubResult) Err() error {
	return r.err
}

type stubJob struct {
	duration  time.Duration
	shouldErr bool
	executed  *int32
}

func (j *stubJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.duration > 0 {
		select {
		case <-time.After(j.duration):
		case <-ctx.Done():
			return &stubResult{err: ctx.Err()}
		}
	}
	if j.shouldErr {
		return &stubResult{err: errors.New("job error")}
	}
	return &stubResult{}
}

func TestNewPool_WorkerFloor(t *testing.T) {
	if got := NewPool(5, 0).workers; got != 5 {
		t.Errorf("workers = %d, want 5", got)
	}
	if got := NewPool(0, 0).workers; got != 1 {
		t.Errorf("workers for 0 = %d, want 1", got)
	}
	if got := NewPool(-3, 0).workers; got != 1 {
		t.Errorf("workers for -3 = %d, want 1", got)
	}
}

func TestNewPool_QueueFloor(t *testing.T) {
	if got := cap(NewPool(4, 0).jobs); got != 8 {
		t.Errorf("queue for 0 = %d, want twice the workers (8)", got)
	}
	if got := cap(NewPool(2, 100).jobs); got != 100 {
		t.Errorf("queue = %d, want requested 100", got)
	}
}

func TestPool_ExecutesEveryJob(t *testing.T) {
	// Far more jobs than workers: the queue must absorb the whole batch
	// when one goroutine submits and collects.
	const count = 100
	pool := NewPool(2, count)
	pool.Start()

	var executed int32
	for i := 0; i < count; i++ {
		pool.Submit(&stubJob{executed: &executed})
	}

	results := pool.Wait()

	if len(results) != count {
		t.Errorf("got %d results, want %d", len(results), count)
	}
	if n := atomic.LoadInt32(&executed); n != count {
		t.Errorf("executed %d jobs, want %d", n, count)
	}
}

func TestPool_ErrorsDoNotStopOtherJobs(t *testing.T) {
	pool := NewPool(3, 6)
	pool.Start()

	for i := 0; i < 6; i++ {
		pool.Submit(&stubJob{shouldErr: i%2 == 0})
	}
	results := pool.Wait()

	var failed, ok int
	for _, r := range results {
		if r.Err() != nil {
			failed++
		} else {
			ok++
		}
	}
	if failed != 3 || ok != 3 {
		t.Errorf("failed=%d ok=%d, want 3 and 3", failed, ok)
	}
}

type gaugeJob struct {
	enter func()
	leave func()
}

func (j *gaugeJob) Execute(ctx context.Context) Result {
	j.enter()
	time.Sleep(5 * time.Millisecond)
	j.leave()
	return &stubResult{}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	const workers = 2
	pool := NewPool(workers, 8)
	pool.Start()

	var mu sync.Mutex
	var current, peak int

	for i := 0; i < 8; i++ {
		pool.Submit(&gaugeJob{
			enter: func() {
				mu.Lock()
				current++
				if current > peak {
					peak = current
				}
				mu.Unlock()
			},
			leave: func() {
				mu.Lock()
				current--
				mu.Unlock()
			},
		})
	}
	pool.Wait()

	mu.Lock()
	defer mu.Unlock()
	if peak > workers {
		t.Errorf("observed %d concurrent jobs, pool allows %d", peak, workers)
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(1, 0)
	pool.Start()

	pool.Submit(&stubJob{duration: time.Second})
	pool.Shutdown()

	// Submit after shutdown must not block.
	done := make(chan struct{})
	go func() {
		pool.Submit(&stubJob{})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Submit blocked after Shutdown")
	}
}
