package output

import (
	"fmt"
	"io"

	"github.com/torosent/burstload/internal/metrics"
)

// PrintStart announces a burst before it is dispatched.
func PrintStart(w io.Writer, requests int, target string) {
	fmt.Fprintf(w, "Starting load test with %d requests to %s\n", requests, target)
}

// PrintReport outputs the summary of a finished burst. When no request
// succeeded only a single line is written.
func PrintReport(w io.Writer, stats metrics.Stats) {
	if stats.AllFailed() {
		fmt.Fprintln(w, "All requests failed!")
		return
	}

	fmt.Fprintln(w, "\nLoad Test Results:")
	fmt.Fprintf(w, "Total requests: %d\n", stats.Total)
	fmt.Fprintf(w, "Successful requests: %d\n", stats.Successes)
	fmt.Fprintf(w, "Failed requests: %d\n", stats.Failures)
	fmt.Fprintf(w, "Average request time: %.4f seconds\n", stats.MeanLatency.Seconds())
	fmt.Fprintf(w, "Total test time: %.4f seconds\n", stats.Duration.Seconds())
	fmt.Fprintf(w, "Requests per second: %.2f\n", stats.RequestsPerSec)
}
