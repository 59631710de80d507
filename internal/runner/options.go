package runner

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Requester abstracts executing a single request of a burst.
// It returns the request's own elapsed time, or an error if the request failed.
type Requester interface {
	Do(ctx context.Context, index int) (time.Duration, error)
}

// Options configure the Runner.
type Options struct {
	Requests    int                // number of requests to dispatch
	Concurrency int                // max in-flight requests (0 means every request at once)
	Requester   Requester          // request executor (required)
	Logger      logrus.FieldLogger // lifecycle logging (optional)
	RunID       string             // identifies the burst in logs (generated if empty)
}

func (o *Options) normalize() {
	if o.Requests < 0 {
		o.Requests = 0
	}
	if o.Concurrency < 0 {
		o.Concurrency = 0
	}
	if o.Logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.Logger = discard
	}
	if o.RunID == "" {
		o.RunID = NewRunID()
	}
}
