package metrics

import "time"

// Outcome is the result of one dispatched request: either the measured
// duration or the absence value for a failed request.
type Outcome struct {
	Duration time.Duration
	OK       bool
}

// Success returns the outcome of a request that completed in d.
func Success(d time.Duration) Outcome {
	if d < 0 {
		d = 0
	}
	return Outcome{Duration: d, OK: true}
}

// Failure returns the absence value.
func Failure() Outcome {
	return Outcome{}
}
