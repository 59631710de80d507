// Package tracing wraps each request of a burst in an OpenTelemetry client span.
//
// Spans are exported over OTLP once Init finds an endpoint in the standard
// OTEL_EXPORTER_OTLP_* environment; otherwise they go to a no-op tracer.
package tracing

import (
	"context"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/torosent/burstload"

// Attribute keys attached to every request span.
const (
	AttrRunID         = attribute.Key("burstload.run_id")
	AttrDispatchIndex = attribute.Key("burstload.dispatch_index")
	AttrMethod        = attribute.Key("http.request.method")
	AttrURL           = attribute.Key("url.full")
	AttrBodyBytes     = attribute.Key("http.response.body.size")
	AttrStatusCode    = attribute.Key("http.response.status_code")
)

// Tracer returns the tracer used for request spans.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

// StartRequestSpan starts a client span for the request with the given dispatch index.
func StartRequestSpan(ctx context.Context, tracer trace.Tracer, runID, target string, index int) (context.Context, trace.Span) {
	if tracer == nil {
		tracer = Tracer()
	}
	ctx, span := tracer.Start(ctx, "burstload "+http.MethodGet,
		trace.WithSpanKind(trace.SpanKindClient),
	)
	span.SetAttributes(
		AttrDispatchIndex.Int(index),
		AttrMethod.String(http.MethodGet),
		AttrURL.String(RedactURL(target)),
	)
	if runID != "" {
		span.SetAttributes(AttrRunID.String(runID))
	}
	return ctx, span
}

// RedactURL replaces any userinfo in target with REDACTED so credentials never
// reach span attributes. Unparseable targets are returned unchanged.
func RedactURL(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.User == nil {
		return target
	}
	if _, hasPassword := u.User.Password(); hasPassword {
		u.User = url.UserPassword("REDACTED", "REDACTED")
	} else {
		u.User = url.User("REDACTED")
	}
	return u.String()
}

// InjectHeaders writes the span context in ctx into header using the global
// propagator, which Init sets to W3C trace context and baggage.
func InjectHeaders(ctx context.Context, header http.Header) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(header))
}

// EndSpan finishes a span, recording error status if applicable.
func EndSpan(span trace.Span, err error, attrs ...attribute.KeyValue) {
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
