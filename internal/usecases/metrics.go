package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                    = otel.Meter("usecases")
	CapabilityInvocations    metric.Int64Counter
	CapabilityDegradeAttempt metric.Int64Counter
	DelegationAttempts       metric.Int64Counter
	DownloadProgress         metric.Float64Gauge
	CapabilityDuration       metric.Float64Histogram
)

func init() {
	var err error
	// Capability operations by tier and result kind
	CapabilityInvocations, err = meter.Int64Counter(
		"capability_invocations_total",
		metric.WithDescription("Total capability invocations by tier and outcome"),
	)
	if err != nil {
		panic(err)
	}

	CapabilityDegradeAttempt, err = meter.Int64Counter(
		"capability_degrade_attempts_total",
		metric.WithDescription("Total attempts made by the degrading invoker by stage"),
	)
	if err != nil {
		panic(err)
	}

	DelegationAttempts, err = meter.Int64Counter(
		"delegation_attempts_total",
		metric.WithDescription("Total cross-context delivery attempts by operation and outcome"),
	)
	if err != nil {
		panic(err)
	}

	CapabilityDuration, err = meter.Float64Histogram(
		"capability_invocation_duration_seconds",
		metric.WithDescription("Time spent walking the tier chain of a capability operation"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	DownloadProgress, err = meter.Float64Gauge(
		"capability_download_progress",
		metric.WithDescription("Last reported model download progress (0..1)"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordCapabilityInvocation records the outcome of a capability operation.
func RecordCapabilityInvocation(ctx context.Context, name domain.CapabilityName, res domain.InvocationResult, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		telemetry.CapabilityKey.String(string(name)),
		telemetry.TierKey.String(string(res.Tier)),
		telemetry.ResultKindKey.String(string(res.Kind)),
	)
	CapabilityInvocations.Add(ctx, 1, attrs)
	CapabilityDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordDegradeAttempt records one attempt of the degrading ladder.
func RecordDegradeAttempt(ctx context.Context, stage string, succeeded bool) {
	CapabilityDegradeAttempt.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stage", stage),
		attribute.Bool("succeeded", succeeded),
	))
}

// RecordDelegationAttempt records one delivery attempt of a delegated request.
func RecordDelegationAttempt(ctx context.Context, op domain.OperationType, delivered bool) {
	DelegationAttempts.Add(ctx, 1, metric.WithAttributes(
		telemetry.OperationKey.String(string(op)),
		attribute.Bool("delivered", delivered),
	))
}

// RecordDownloadProgress records the download progress of a capability model.
func RecordDownloadProgress(ctx context.Context, name domain.CapabilityName, fraction float64) {
	DownloadProgress.Record(ctx, fraction, metric.WithAttributes(
		telemetry.CapabilityKey.String(string(name)),
	))
}
