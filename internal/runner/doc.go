// Package runner provides the burst execution engine for burstload.
//
// A [Runner] dispatches a fixed number of requests at once, one goroutine per
// dispatch index, and waits for every one of them before returning:
//
//	r := runner.New(runner.Options{
//		Requests:  100,
//		Requester: myRequester,
//	})
//	result := r.Run(ctx)
//	stats := metrics.Summarize(100, result.Outcomes, result.Duration)
//
// # Requester Interface
//
// The [Requester] interface defines what a runner executes:
//
//	type Requester interface {
//		Do(ctx context.Context, index int) (time.Duration, error)
//	}
//
// The requester times its own request. A non-nil error turns the request into
// the absence outcome; it never stops the burst or reaches the caller of Run.
//
// # Concurrency
//
// By default there is no backpressure: every request is in flight at the same
// time. [Options.Concurrency] caps the number of in-flight requests when set.
//
// # Middleware
//
// [WithLogging] reports each failure with its dispatch index the moment it
// happens.
//
// # Logging
//
// Run logs "dispatching burst" and "burst joined" at Info, both carrying the
// run id so log lines can be matched with exported spans.
package runner
