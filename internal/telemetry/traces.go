package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/cleitonmarx/symbiont-smartread"

var (
	tracer = otel.Tracer(instrumentationName)
)

// Span attribute keys shared by the SmartRead operations.
const (
	CapabilityKey       = attribute.Key("smartread.capability")
	TierKey             = attribute.Key("smartread.tier")
	ResultKindKey       = attribute.Key("smartread.result_kind")
	OperationKey        = attribute.Key("smartread.operation")
	ExecutionContextKey = attribute.Key("smartread.execution_context")
	RequestIDKey        = attribute.Key("smartread.request_id")
)

// SpanNameFormatter names HTTP spans after the matched mux pattern, falling back to the
// method and path for unmatched requests.
func SpanNameFormatter(_ string, r *http.Request) string {
	return getHttpRoute(r)
}

func getHttpRoute(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
}

// Start a new span named after the calling function.
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, getCallerName(2), opts...)
}

// StartNamed starts a new span with an explicit name. Used where the caller is a closure
// and its runtime name would be meaningless.
func StartNamed(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, opts...)
}

// RecordErrorAndStatus records an error in the span and sets the status to Error.
// Cancellation is recorded as an event and leaves the status unset.
// Returns true if an error was recorded, false otherwise.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err == nil {
		span.SetStatus(codes.Ok, "OK")
		return false
	}
	if errors.Is(err, context.Canceled) {
		span.AddEvent("canceled")
		return true
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return true
}

// HttpHandler wraps an http.Handler with OpenTelemetry instrumentation.
func HttpHandler(h http.Handler, operation string) http.Handler {
	return Middleware(operation)(h)
}

// Middleware returns an HTTP middleware that instruments handlers with OpenTelemetry.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		operation,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
		otelhttp.WithMetricAttributesFn(WithHttpMetricAttributes),
		otelhttp.WithFilter(skipProbeRequests),
	)
}

// skipProbeRequests keeps liveness checks out of the traces.
func skipProbeRequests(r *http.Request) bool {
	return r.URL.Path != "/healthz"
}

// getCallerName returns "pkg::Type::Method" for the function at the given stack depth.
func getCallerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	parts := strings.Split(fn.Name(), "/")
	name := strings.NewReplacer("(", "", ")", "", "*", "").Replace(parts[len(parts)-1])

	return strings.ReplaceAll(name, ".", "::")
}

// newSampler samples a fraction of the root spans and follows the parent decision otherwise.
func newSampler(ratio float64) sdktrace.Sampler {
	switch {
	case ratio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case ratio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}

// newTracerProvider creates a new tracer provider with an OTLP HTTP exporter.
func newTracerProvider(ctx context.Context, res *resource.Resource, ratio float64) (*sdktrace.TracerProvider, sdktrace.SpanExporter, error) {
	otlpExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(otlpExporter,
			sdktrace.WithBatchTimeout(time.Second),
		),
		sdktrace.WithSampler(newSampler(ratio)),
		sdktrace.WithResource(res),
	)
	return tracerProvider, otlpExporter, nil
}
