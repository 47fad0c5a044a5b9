package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultDelegationAttempts is the number of delivery attempts of a delegated request.
	DefaultDelegationAttempts = 3
	// DefaultDelegationDelay is the fixed pause between two delivery attempts.
	DefaultDelegationDelay = 400 * time.Millisecond
)

// DelegateOptions bounds the delivery of a delegated request.
type DelegateOptions struct {
	Attempts int
	Delay    time.Duration
}

func (o DelegateOptions) withDefaults(def DelegateOptions) DelegateOptions {
	if o.Attempts <= 0 {
		o.Attempts = def.Attempts
	}
	if o.Delay < 0 {
		o.Delay = 0
	}
	if o.Delay == 0 && def.Delay > 0 {
		o.Delay = def.Delay
	}
	return o
}

// CrossContextDelegate forwards an operation to the execution context able to run it.
type CrossContextDelegate interface {
	// Delegate returns the acknowledged result. Undelivered requests are retried and fail
	// with *domain.DelegationFailedErr once the attempts are exhausted; a delivered but
	// unacknowledged request fails the same way without being sent again. ok=false
	// acknowledgments fail with *domain.RemoteOperationErr. Zero options fall back to the
	// configured defaults.
	Delegate(ctx context.Context, op domain.OperationType, payload any, target domain.ExecutionContext, opts DelegateOptions) (json.RawMessage, error)
}

// CrossContextDelegateImpl is the implementation of the CrossContextDelegate use case.
type CrossContextDelegateImpl struct {
	transport  domain.MessageTransport
	origin     domain.ExecutionContext
	defaults   DelegateOptions
	logger     *log.Logger
	createUUID func() uuid.UUID
}

// NewCrossContextDelegateImpl creates a new instance of CrossContextDelegateImpl.
func NewCrossContextDelegateImpl(
	transport domain.MessageTransport,
	origin domain.ExecutionContext,
	defaults DelegateOptions,
	logger *log.Logger,
) CrossContextDelegateImpl {
	return CrossContextDelegateImpl{
		transport:  transport,
		origin:     origin,
		defaults:   defaults.withDefaults(DelegateOptions{Attempts: DefaultDelegationAttempts, Delay: DefaultDelegationDelay}),
		logger:     logger,
		createUUID: uuid.New,
	}
}

// Delegate implements CrossContextDelegate.
func (d CrossContextDelegateImpl) Delegate(ctx context.Context, op domain.OperationType, payload any, target domain.ExecutionContext, opts DelegateOptions) (json.RawMessage, error) {
	opts = opts.withDefaults(d.defaults)

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.OperationKey.String(string(op)),
		telemetry.ExecutionContextKey.String(string(target)),
		attribute.Int("attempts", opts.Attempts),
	))
	defer span.End()

	raw, err := json.Marshal(payload)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", op, err)
	}

	env := domain.DelegationEnvelope{
		CorrelationID: d.createUUID(),
		OperationType: op,
		Payload:       raw,
		Origin:        d.origin,
		Target:        target,
	}
	span.SetAttributes(telemetry.RequestIDKey.String(env.CorrelationID.String()))

	var lastErr error
	attempt := 1
	for ; attempt <= opts.Attempts; attempt++ {
		ack, err := d.transport.Deliver(spanCtx, env)
		delivered := err == nil || errors.Is(err, domain.ErrNoAcknowledgement)
		if err == nil && ack.CorrelationID != env.CorrelationID {
			err = fmt.Errorf("acknowledgement correlation mismatch: got %s", ack.CorrelationID)
		}
		RecordDelegationAttempt(spanCtx, op, err == nil)

		if err == nil {
			if !ack.OK {
				remoteErr := domain.NewRemoteOperationErr(op, ack.Error)
				telemetry.RecordErrorAndStatus(span, remoteErr)
				return nil, remoteErr
			}
			telemetry.RecordErrorAndStatus(span, nil)
			return ack.Result, nil
		}

		if ctx.Err() != nil {
			telemetry.RecordErrorAndStatus(span, ctx.Err())
			return nil, ctx.Err()
		}

		lastErr = err
		d.logger.Printf("CrossContextDelegate: attempt %d/%d of %s to %s failed: %v", attempt, opts.Attempts, op, target, err)

		// Only undelivered envelopes are sent again. A delivered one may already be running
		// in the target context.
		if delivered {
			break
		}

		if attempt < opts.Attempts {
			if err := sleepContext(ctx, opts.Delay); err != nil {
				telemetry.RecordErrorAndStatus(span, err)
				return nil, err
			}
		}
	}

	failed := domain.NewDelegationFailedErr(min(attempt, opts.Attempts), lastErr)
	telemetry.RecordErrorAndStatus(span, failed)
	return nil, failed
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// InitCrossContextDelegate initializes the CrossContextDelegate use case.
type InitCrossContextDelegate struct {
	Transport        domain.MessageTransport `resolve:""`
	Logger           *log.Logger             `resolve:""`
	ExecutionContext string                  `config:"EXECUTION_CONTEXT" default:"background"`
	Attempts         int                     `config:"DELEGATION_ATTEMPTS" default:"3"`
	Delay            time.Duration           `config:"DELEGATION_DELAY" default:"400ms"`
}

// Initialize registers the CrossContextDelegate use case implementation.
func (i InitCrossContextDelegate) Initialize(ctx context.Context) (context.Context, error) {
	origin, err := domain.ParseExecutionContext(i.ExecutionContext)
	if err != nil {
		return ctx, err
	}
	depend.Register[CrossContextDelegate](NewCrossContextDelegateImpl(
		i.Transport,
		origin,
		DelegateOptions{Attempts: i.Attempts, Delay: i.Delay},
		i.Logger,
	))
	return ctx, nil
}
