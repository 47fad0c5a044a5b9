package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"go.opentelemetry.io/otel/trace"
)

// capabilityRunner walks the tiers of a capability in preference order. A tier whose
// session cannot be created, or whose invocation ends in failure, hands over to the next
// one; the demo responder answers when every tier is exhausted. Without a demo responder
// the failure is CapabilityUnavailable only when no tier got to run.
type capabilityRunner struct {
	factory SessionFactory
	invoker DegradingInvoker
	logger  *log.Logger
}

func newCapabilityRunner(f SessionFactory, i DegradingInvoker, l *log.Logger) capabilityRunner {
	return capabilityRunner{factory: f, invoker: i, logger: l}
}

// tierChain returns the descriptor at the specialized and general-purpose tiers.
func tierChain(d domain.CapabilityDescriptor) []domain.CapabilityDescriptor {
	return []domain.CapabilityDescriptor{
		d.WithTier(domain.Tier_Specialized),
		d.WithTier(domain.Tier_GeneralPurpose),
	}
}

// run never returns host failures as errors: they end up in the result. Invalid input and
// context cancellation are returned as errors.
func (r capabilityRunner) run(ctx context.Context, chain []domain.CapabilityDescriptor, req domain.InvocationRequest) (domain.InvocationResult, error) {
	if err := validateInvocationInput(req); err != nil {
		return domain.InvocationResult{}, err
	}

	name := domain.CapabilityName("")
	if len(chain) > 0 {
		name = chain[0].Name
	}

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.CapabilityKey.String(string(name)),
	))
	defer span.End()
	started := time.Now()

	demo := req.Demo
	req.Demo = nil

	reason := fmt.Sprintf("%s API not supported", name)
	failureKind := domain.ErrorKind_CapabilityUnavailable
	for _, d := range chain {
		if d.Tier == domain.Tier_Demo {
			continue
		}

		session, err := r.factory.GetOrCreate(spanCtx, d, downloadStatus(req.Status, d.Name))
		if err != nil {
			if ctx.Err() != nil {
				return domain.InvocationResult{}, ctx.Err()
			}
			var unavailableErr *domain.CapabilityUnavailableErr
			if !errors.As(err, &unavailableErr) {
				r.logger.Printf("CapabilityRunner: %s session at tier %s failed: %v", d.Name, d.Tier, err)
				failureKind = domain.ErrorKind_TransientInvocation
				reason = err.Error()
			} else if failureKind == domain.ErrorKind_CapabilityUnavailable {
				reason = err.Error()
			}
			continue
		}

		res, err := r.invoker.Invoke(spanCtx, session, req)
		if err != nil {
			telemetry.RecordErrorAndStatus(span, err)
			return domain.InvocationResult{}, err
		}
		if res.Kind == domain.ResultKind_Success {
			res.Tier = d.Tier
			span.SetAttributes(telemetry.TierKey.String(string(d.Tier)))
			RecordCapabilityInvocation(spanCtx, name, res, time.Since(started))
			return res, nil
		}
		reason = res.Reason
		if res.ErrorKind != domain.ErrorKind_None {
			failureKind = res.ErrorKind
		}
	}

	var res domain.InvocationResult
	if demo != nil {
		res = domain.DemoResult(demo(domain.TruncateRunes(req.Input.Text, 1000)), reason)
	} else {
		res = domain.FailureResult(failureKind, reason)
	}
	span.SetAttributes(
		telemetry.TierKey.String(string(res.Tier)),
		telemetry.ResultKindKey.String(string(res.Kind)),
	)
	RecordCapabilityInvocation(spanCtx, name, res, time.Since(started))
	return res, nil
}

// downloadStatus turns model download progress into status messages.
func downloadStatus(status domain.StatusFunc, name domain.CapabilityName) domain.ProgressObserver {
	return domain.ProgressObserverFunc(func(fraction float64) {
		status.Report(fmt.Sprintf("Downloading %s model: %d%%", name, int(math.Round(fraction*100))))
	})
}
