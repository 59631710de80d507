package runner

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/torosent/burstload/internal/metrics"
)

// Result captures execution summary.
type Result struct {
	RunID    string
	Outcomes []metrics.Outcome // indexed by dispatch index
	Duration time.Duration     // wall clock from first dispatch to join
}

// Runner dispatches a fixed burst of concurrent requests.
type Runner struct {
	opt Options
}

func New(opt Options) *Runner {
	opt.normalize()
	return &Runner{opt: opt}
}

// Run launches every request of the burst and returns once all of them have
// resolved. Each request writes only its own outcome slot, so the slice needs
// no locking until Wait returns.
func (r *Runner) Run(ctx context.Context) Result {
	if ctx == nil {
		ctx = context.Background()
	}
	log := r.opt.Logger.WithFields(logrus.Fields{
		"run_id":   r.opt.RunID,
		"requests": r.opt.Requests,
	})

	outcomes := make([]metrics.Outcome, r.opt.Requests)

	var g errgroup.Group
	if r.opt.Concurrency > 0 {
		g.SetLimit(r.opt.Concurrency)
	}

	log.WithField("concurrency", r.opt.Concurrency).Info("dispatching burst")
	start := time.Now()
	for i := 0; i < r.opt.Requests; i++ {
		i := i
		g.Go(func() error {
			outcomes[i] = r.execute(ctx, i)
			return nil
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	log.WithField("elapsed", elapsed).Info("burst joined")

	return Result{
		RunID:    r.opt.RunID,
		Outcomes: outcomes,
		Duration: elapsed,
	}
}

func (r *Runner) execute(ctx context.Context, index int) metrics.Outcome {
	if r.opt.Requester == nil {
		return metrics.Failure()
	}
	latency, err := r.opt.Requester.Do(ctx, index)
	if err != nil {
		return metrics.Failure()
	}
	return metrics.Success(latency)
}
