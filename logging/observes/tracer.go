package observes

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name used for spans created here.
const TracerName = "github.com/ncobase/taskboard"

// TracerOption configures the OTLP trace exporter.
type TracerOption struct {
	URL                string
	Insecure           bool
	Name               string
	Version            string
	Branch             string
	Revision           string
	Environment        string
	SamplingRate       float64
	BatchTimeout       time.Duration
	ExportTimeout      time.Duration
	MaxExportBatchSize int
}

// NewTracer installs a global tracer provider exporting over OTLP/gRPC. It
// is a no-op without a URL. The returned func flushes and stops the
// provider.
func NewTracer(opt *TracerOption) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if opt == nil || opt.URL == "" {
		return noop, nil
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(opt.URL)}
	if opt.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exp, err := otlptracegrpc.New(context.Background(), opts...)
	if err != nil {
		return noop, fmt.Errorf("failed to create exporter: %w", err)
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(opt.Name),
			attribute.String("version", opt.Version),
			attribute.String("branch", opt.Branch),
			attribute.String("revision", opt.Revision),
			attribute.String("environment", opt.Environment),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("failed to create resource: %w", err)
	}

	batch := []sdktrace.BatchSpanProcessorOption{}
	if opt.MaxExportBatchSize > 0 {
		batch = append(batch, sdktrace.WithMaxExportBatchSize(opt.MaxExportBatchSize))
	}
	if opt.BatchTimeout > 0 {
		batch = append(batch, sdktrace.WithBatchTimeout(opt.BatchTimeout))
	}
	if opt.ExportTimeout > 0 {
		batch = append(batch, sdktrace.WithExportTimeout(opt.ExportTimeout))
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opt.SamplingRate))),
		sdktrace.WithBatcher(exp, batch...),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

// Tracer returns the service tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// Layer names the tier a span belongs to.
type Layer int

const (
	LayerUnknown Layer = iota
	LayerHandler
	LayerService
	LayerRepo
)

func (l Layer) String() string {
	return [...]string{"Unknown", "Handler", "Service", "Repository"}[l]
}

// StartSpan opens a child span tagged with its layer.
func StartSpan(ctx context.Context, layer Layer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("layer", layer.String()))
	return Tracer().Start(ctx, name, trace.WithAttributes(attrs...))
}
