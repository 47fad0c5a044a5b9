package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// InitOpenTelemetry sets up tracing and metrics export. Each signal stays on the no-op
// provider while its endpoint is "-".
type InitOpenTelemetry struct {
	Logger          *log.Logger   `resolve:""`
	TracesEndpoint  string        `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string        `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	SampleRatio     string        `config:"OTEL_TRACES_SAMPLE_RATIO" default:"1"`
	MetricsInterval time.Duration `config:"OTEL_METRICS_EXPORT_INTERVAL" default:"5s"`
	Version         string        `config:"APP_VERSION" default:"dev"`
	tp              *sdktrace.TracerProvider
	mp              *sdkmetric.MeterProvider
}

// Initialize installs the propagator and the configured providers.
func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	otel.SetTextMapPropagator(newPropagator())

	res, err := newAppResource(ctx, o.Version)
	if err != nil {
		return ctx, err
	}

	if o.TracesEndpoint != "-" {
		ratio, err := strconv.ParseFloat(o.SampleRatio, 64)
		if err != nil {
			return ctx, fmt.Errorf("invalid OTEL_TRACES_SAMPLE_RATIO %q: %w", o.SampleRatio, err)
		}
		o.tp, _, err = newTracerProvider(ctx, res, ratio)
		if err != nil {
			return ctx, fmt.Errorf("failed to create tracer provider: %w", err)
		}
		otel.SetTracerProvider(o.tp)
		tracer = o.tp.Tracer(instrumentationName)
	}

	if o.MetricsEndpoint != "-" {
		o.mp, _, err = newMeterProvider(ctx, res, o.MetricsInterval)
		if err != nil {
			return ctx, fmt.Errorf("failed to create meter provider: %w", err)
		}
		otel.SetMeterProvider(o.mp)
	}

	return ctx, nil
}

// Close flushes and shuts down the providers. Shutting a provider down also shuts down
// its exporter.
func (o *InitOpenTelemetry) Close() {
	if o.tp == nil && o.mp == nil {
		return
	}

	cancelCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []error
	if o.tp != nil {
		errs = append(errs, o.tp.Shutdown(cancelCtx))
	}
	if o.mp != nil {
		errs = append(errs, o.mp.Shutdown(cancelCtx))
	}
	if err := errors.Join(errs...); err != nil {
		o.Logger.Printf("Telemetry: error shutting down providers: %v", err)
	}
}

// InitHttpClient registers the *http.Client used to reach the local model runner. It is
// instrumented with OpenTelemetry and retries connection failures.
type InitHttpClient struct {
	Logger   *log.Logger   `resolve:""`
	RetryMax int           `config:"HTTP_CLIENT_RETRY_MAX" default:"3"`
	WaitMax  time.Duration `config:"HTTP_CLIENT_RETRY_WAIT_MAX" default:"5s"`
}

func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryWaitMax = i.WaitMax
	retryClient.RetryMax = i.RetryMax
	retryClient.CheckRetry = noRetryOnServerError(retryablehttp.ErrorPropagatedRetryPolicy)
	retryClient.Logger = i.Logger

	stdClient := retryClient.StandardClient()
	stdClient.Transport = otelhttp.NewTransport(
		stdClient.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)

	depend.Register(stdClient)
	return ctx, nil
}

func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newAppResource(ctx context.Context, version string) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String("smartread"),
			semconv.ServiceVersionKey.String(version),
		),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// noRetryOnServerError stops retrying once the model runner answered with a 5xx status
// or the context is done.
func noRetryOnServerError(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if resp != nil && resp.StatusCode >= http.StatusInternalServerError {
			return false, err
		}
		return policy(ctx, resp, err)
	}
}
