// Package metrics turns the outcomes of a burst into summary statistics.
//
// Each dispatched request produces exactly one [Outcome]: a measured duration
// built with [Success], or the absence value returned by [Failure]. Outcomes
// are written into a slice indexed by dispatch index while the burst runs and
// read only after every request has resolved:
//
//	outcomes := make([]metrics.Outcome, n)
//	// ... each request writes outcomes[i] ...
//	stats := metrics.Summarize(n, outcomes, elapsed)
//
// # Statistics
//
// [Stats] carries the request counts, the arithmetic mean of the successful
// durations, the wall-clock duration of the whole burst, and the nominal
// throughput. Throughput divides the configured request count by the
// wall-clock duration, so failed requests are part of the numerator.
package metrics
