package tracing

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Standard OpenTelemetry SDK environment variables read by Init.
const (
	EnvEndpoint       = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvTracesEndpoint = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
	EnvProtocol       = "OTEL_EXPORTER_OTLP_PROTOCOL"
	EnvTracesProtocol = "OTEL_EXPORTER_OTLP_TRACES_PROTOCOL"
	EnvServiceName    = "OTEL_SERVICE_NAME"
)

const defaultServiceName = "burstload"

// Provider owns the process tracer provider. The zero value is disabled and
// hands out no-op tracers.
type Provider struct {
	tp       *sdktrace.TracerProvider
	tracer   trace.Tracer
	endpoint string
}

// Init installs an OTLP-exporting tracer provider when an OTLP endpoint is set
// in the environment. Without one it returns a disabled Provider and leaves
// the global provider untouched.
func Init(ctx context.Context) (*Provider, error) {
	endpoint := firstEnv(EnvTracesEndpoint, EnvEndpoint)
	if endpoint == "" {
		return &Provider{}, nil
	}

	serviceName := os.Getenv(EnvServiceName)
	if serviceName == "" {
		serviceName = defaultServiceName
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("tracing resource: %w", err)
	}

	exporter, err := newExporter(ctx, firstEnv(EnvTracesProtocol, EnvProtocol))
	if err != nil {
		return nil, fmt.Errorf("tracing exporter: %w", err)
	}

	// The sampler comes from OTEL_TRACES_SAMPLER when set.
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Provider{
		tp:       tp,
		tracer:   tp.Tracer(instrumentationName),
		endpoint: endpoint,
	}, nil
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.tp != nil
}

// Endpoint returns the OTLP endpoint spans are exported to, if any.
func (p *Provider) Endpoint() string {
	if p == nil {
		return ""
	}
	return p.endpoint
}

// Tracer returns the configured tracer, or a no-op tracer when disabled.
func (p *Provider) Tracer() trace.Tracer {
	if p == nil || p.tracer == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return p.tracer
}

// Shutdown flushes pending spans and shuts down the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.tp == nil {
		return nil
	}
	return p.tp.Shutdown(ctx)
}

// newExporter builds the OTLP exporter for protocol. Both exporters resolve the
// endpoint, headers and TLS settings from the OTEL_EXPORTER_OTLP_* variables.
func newExporter(ctx context.Context, protocol string) (sdktrace.SpanExporter, error) {
	switch strings.ToLower(protocol) {
	case "", "grpc":
		return otlptracegrpc.New(ctx)
	case "http", "http/protobuf":
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q: use \"grpc\" or \"http/protobuf\"", protocol)
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
