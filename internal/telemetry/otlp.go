// Package telemetry sets up OpenTelemetry tracing for profilescreen.
package telemetry

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	// EndpointEnv enables OTLP/HTTP export when set.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides DefaultServiceName.
	ServiceNameEnv     = "OTEL_SERVICE_NAME"
	DefaultServiceName = "profilescreen"
)

// Provider owns the SDK tracer provider. A Provider built without an endpoint
// records nothing and exports nothing.
type Provider struct {
	provider *sdktrace.TracerProvider
	enabled  bool
}

// Options configures NewProvider. Zero values fall back to the environment.
type Options struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
	// SpanProcessor, when set, is registered in addition to the exporter.
	// Tests use it with tracetest.SpanRecorder.
	SpanProcessor sdktrace.SpanProcessor
}

// NewProvider builds a tracer provider from opts and the OTEL_* environment.
func NewProvider(ctx context.Context, opts Options) (*Provider, error) {
	if opts.Endpoint == "" {
		opts.Endpoint = os.Getenv(EndpointEnv)
	}
	if opts.ServiceName == "" {
		opts.ServiceName = os.Getenv(ServiceNameEnv)
	}
	if opts.ServiceName == "" {
		opts.ServiceName = DefaultServiceName
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(opts.ServiceName),
	)
	tpOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	enabled := false

	if opts.Endpoint != "" {
		exOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
		if opts.Insecure {
			exOpts = append(exOpts, otlptracehttp.WithInsecure())
		}
		exporter, err := otlptracehttp.New(ctx, exOpts...)
		if err != nil {
			return nil, err
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exporter))
		enabled = true
	}
	if opts.SpanProcessor != nil {
		tpOpts = append(tpOpts, sdktrace.WithSpanProcessor(opts.SpanProcessor))
		enabled = true
	}
	if !enabled {
		tpOpts = append(tpOpts, sdktrace.WithSampler(sdktrace.NeverSample()))
	}

	return &Provider{
		provider: sdktrace.NewTracerProvider(tpOpts...),
		enabled:  enabled,
	}, nil
}

// Enabled reports whether spans are recorded.
func (p *Provider) Enabled() bool {
	return p != nil && p.enabled
}

// Tracer returns a named tracer. A nil provider yields the global one.
func (p *Provider) Tracer(name string) oteltrace.Tracer {
	if p == nil {
		return otel.Tracer(name)
	}
	return p.provider.Tracer(name)
}

// Install registers the provider as the global otel tracer provider.
func (p *Provider) Install() {
	otel.SetTracerProvider(p.provider)
}

// Shutdown flushes pending spans and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
