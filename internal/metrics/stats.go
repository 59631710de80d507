package metrics

import "time"

// Stats represents the aggregated result of one burst.
type Stats struct {
	Total          int64
	Successes      int64
	Failures       int64
	MeanLatency    time.Duration
	Duration       time.Duration
	RequestsPerSec float64
}

// Summarize computes Stats once every outcome of a burst is known.
//
// requested is the number of requests the burst was configured with. It is
// both the reported total and the throughput numerator, so failed requests
// count toward requests per second.
func Summarize(requested int, outcomes []Outcome, elapsed time.Duration) Stats {
	if requested < 0 {
		requested = 0
	}

	var successes int64
	var sum time.Duration
	for _, o := range outcomes {
		if !o.OK {
			continue
		}
		successes++
		sum += o.Duration
	}

	stats := Stats{
		Total:     int64(requested),
		Successes: successes,
		Failures:  int64(requested) - successes,
		Duration:  elapsed,
	}
	if stats.Failures < 0 {
		stats.Failures = 0
	}

	if successes > 0 {
		stats.MeanLatency = time.Duration(int64(sum) / successes)
	}
	if elapsed > 0 {
		stats.RequestsPerSec = float64(requested) / elapsed.Seconds()
	}
	return stats
}

// AllFailed reports whether no request produced a duration.
func (s Stats) AllFailed() bool {
	return s.Successes == 0
}
