package output

import (
	"fmt"
	"io"
	"sync"
)

// FailureWriter prints one line per failed request. It is safe for
// concurrent use; lines from different requests never interleave.
type FailureWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewFailureWriter(w io.Writer) *FailureWriter {
	if w == nil {
		w = io.Discard
	}
	return &FailureWriter{w: w}
}

// LogFailure implements runner.FailureLogger.
func (f *FailureWriter) LogFailure(index int, err error) {
	if err == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	fmt.Fprintf(f.w, "Request %d failed: %v\n", index, err)
}
