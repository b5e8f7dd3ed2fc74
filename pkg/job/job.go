package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

// Func is a periodic unit of work. Returned errors are logged and the job keeps its schedule.
type Func func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       Func
}

// Runner starts registered jobs on their own tickers. Every job runs once immediately on Start.
type Runner struct {
	jobs []job
	wg   sync.WaitGroup
}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Register(name string, interval time.Duration, fn Func) *Runner {
	return r.TryRegister(true, name, interval, fn)
}

// TryRegister registers the job only when isEnabled is set, so optional jobs read well at the call site.
func (r *Runner) TryRegister(isEnabled bool, name string, interval time.Duration, fn Func) *Runner {
	if !isEnabled || interval <= 0 {
		return r
	}

	r.jobs = append(r.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return r
}

func (r *Runner) Start(ctx context.Context) {
	for _, j := range r.jobs {
		r.wg.Add(1)

		go r.run(ctx, j)
	}
}

// Wait blocks until every job returned after ctx cancellation.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) run(ctx context.Context, j job) {
	defer r.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		start := time.Now()

		if err := runSafe(ctx, j.fn); err != nil {
			l.ErrorContext(ctx, "job failed", "error", err)
		} else {
			l.DebugContext(ctx, "job done", "elapsed", time.Since(start))
		}

		select {
		case <-ctx.Done():
			l.Debug("job stopped")
			return
		case <-ticker.C:
		}
	}
}

func runSafe(ctx context.Context, fn Func) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v\n%s", rec, debug.Stack())
		}
	}()

	return fn(ctx)
}
