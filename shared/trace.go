package shared

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// Tracer owns the otel provider for the service. Spans are exported to
// stdout; the redirect path wraps each record in one.
type Tracer struct {
	ServiceName string
	provider    *sdk.TracerProvider
	tracer      trace.Tracer
}

func newExporter(w io.Writer) (sdk.SpanExporter, error) {
	return stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
	)
}

func newResource(serviceName string) *resource.Resource {
	r, _ := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion("v1.0.0"),
			attribute.String("environment", os.Getenv("APP_ENV")),
		),
	)
	return r
}

func NewTracer(serviceName string) *Tracer {
	exporter, err := newExporter(os.Stdout)
	if err != nil {
		panic(err)
	}

	provider := sdk.NewTracerProvider(
		sdk.WithBatcher(exporter),
		sdk.WithResource(newResource(serviceName)),
	)
	otel.SetTracerProvider(provider)

	return &Tracer{
		ServiceName: serviceName,
		provider:    provider,
		tracer:      provider.Tracer(serviceName),
	}
}

func (t *Tracer) Start(ctx context.Context, name string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name)
}

func (t *Tracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}
