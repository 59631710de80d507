package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/torosent/burstload/internal/httpclient"
	"github.com/torosent/burstload/internal/tracing"
)

// httpRequester implements runner.Requester with a GET over the shared client.
type httpRequester struct {
	client  *http.Client
	builder *httpclient.RequestBuilder
	tracer  trace.Tracer
	runID   string
}

// Do issues one GET and times it from dispatch until the body has been read.
// The status code is not inspected; only transport and body errors fail.
func (r *httpRequester) Do(ctx context.Context, index int) (time.Duration, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := tracing.StartRequestSpan(ctx, r.tracer, r.runID, r.builder.Target(), index)

	start := time.Now()
	req, err := r.builder.Build(ctx)
	if err != nil {
		tracing.EndSpan(span, err)
		return 0, err
	}
	tracing.InjectHeaders(ctx, req.Header)

	resp, err := r.client.Do(req)
	if err != nil {
		tracing.EndSpan(span, err)
		return 0, err
	}

	n, err := httpclient.Drain(resp)
	latency := time.Since(start)
	status := tracing.AttrStatusCode.Int(resp.StatusCode)
	if err != nil {
		err = fmt.Errorf("read response body: %w", err)
		tracing.EndSpan(span, err, status)
		return 0, err
	}

	tracing.EndSpan(span, nil, status, tracing.AttrBodyBytes.Int64(n))
	return latency, nil
}
