package runner

import (
	"context"
	"time"
)

// FailureLogger logs failed requests.
type FailureLogger interface {
	LogFailure(index int, err error)
}

// loggingRequester wraps a Requester with failure logging.
type loggingRequester struct {
	inner  Requester
	logger FailureLogger
}

// WithLogging wraps a Requester to log failures as soon as they happen.
func WithLogging(req Requester, logger FailureLogger) Requester {
	if logger == nil {
		return req
	}
	return &loggingRequester{
		inner:  req,
		logger: logger,
	}
}

func (l *loggingRequester) Do(ctx context.Context, index int) (time.Duration, error) {
	latency, err := l.inner.Do(ctx, index)
	if err != nil && l.logger != nil {
		l.logger.LogFailure(index, err)
	}
	return latency, err
}
