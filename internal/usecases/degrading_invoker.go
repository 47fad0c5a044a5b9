package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DegradingInvoker runs a request against a session, shrinking the input on failure and
// falling back to streaming and finally to a demo result.
type DegradingInvoker interface {
	// Invoke returns an error only for invalid input (*domain.ValidationErr) or when ctx is
	// done. Host failures are converted into a demo or failure result.
	Invoke(ctx context.Context, session domain.Session, req domain.InvocationRequest) (domain.InvocationResult, error)
}

// DegradingInvokerImpl is the implementation of the DegradingInvoker use case.
type DegradingInvokerImpl struct {
	logger *log.Logger
}

// NewDegradingInvokerImpl creates a new instance of DegradingInvokerImpl.
func NewDegradingInvokerImpl(l *log.Logger) DegradingInvokerImpl {
	return DegradingInvokerImpl{logger: l}
}

// Invoke implements DegradingInvoker. The first successful stage wins:
// full input, each truncation of the size ladder, streaming, demo.
func (di DegradingInvokerImpl) Invoke(ctx context.Context, session domain.Session, req domain.InvocationRequest) (domain.InvocationResult, error) {
	if err := validateInvocationInput(req); err != nil {
		return domain.InvocationResult{}, err
	}

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("input_size", utf8.RuneCountInString(req.Input.Text)),
	))
	defer span.End()

	c := req.Constraints
	text := req.Input.Text

	maxInput := c.MaxInput
	if maxInput == 0 {
		maxInput = domain.DefaultMaxInput
	}

	first := domain.TruncateRunes(text, maxInput)
	out, err := di.attempt(spanCtx, session, req.Input, first, "full")
	if err == nil {
		span.SetAttributes(attribute.String("stage", "full"))
		return domain.SuccessResult("", out, utf8.RuneCountInString(first)), nil
	}
	lastErr := err
	di.logger.Printf("DegradingInvoker: full input failed, retrying smaller input: %v", err)

	for _, size := range c.SizeLadder {
		if ctx.Err() != nil {
			return domain.InvocationResult{}, ctx.Err()
		}
		req.Status.Report(fmt.Sprintf("Retrying with %d characters...", size))
		truncated := domain.TruncateRunes(text, size)
		out, err := di.attempt(spanCtx, session, req.Input, truncated, fmt.Sprintf("truncate-%d", size))
		if err == nil {
			span.SetAttributes(attribute.String("stage", fmt.Sprintf("truncate-%d", size)))
			return domain.SuccessResult("", out, utf8.RuneCountInString(truncated)), nil
		}
		lastErr = err
	}

	if ss, ok := session.(domain.StreamingSession); ok && c.AllowStreaming {
		if ctx.Err() != nil {
			return domain.InvocationResult{}, ctx.Err()
		}
		size := c.StreamingSize
		if size == 0 {
			size = domain.DefaultStreamingSize
		}
		truncated := domain.TruncateRunes(text, size)
		result, err := di.stream(spanCtx, ss, req.Input, truncated)
		RecordDegradeAttempt(spanCtx, "streaming", err == nil)
		if err == nil {
			span.SetAttributes(attribute.String("stage", "streaming"))
			return domain.SuccessResult("", domain.CapabilityOutput{Text: result}, utf8.RuneCountInString(truncated)), nil
		}
		di.logger.Printf("DegradingInvoker: streaming fallback failed: %v", err)
		lastErr = err
	}

	if ctx.Err() != nil {
		return domain.InvocationResult{}, ctx.Err()
	}

	span.SetAttributes(attribute.String("stage", "demo"))
	reason := lastErr.Error()
	if req.Demo == nil {
		return domain.FailureResult(domain.ErrorKind_TransientInvocation, reason), nil
	}
	return domain.DemoResult(req.Demo(domain.TruncateRunes(text, 1000)), reason), nil
}

func (di DegradingInvokerImpl) attempt(ctx context.Context, session domain.Session, input domain.CapabilityInput, text, stage string) (out domain.CapabilityOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.NewTransientInvocationErr(fmt.Errorf("session panicked: %v", r))
		}
		RecordDegradeAttempt(ctx, stage, err == nil)
	}()

	input.Text = text
	out, err = session.Invoke(ctx, input)
	if err != nil {
		return domain.CapabilityOutput{}, domain.NewTransientInvocationErr(err)
	}
	if out.IsEmpty() {
		return domain.CapabilityOutput{}, domain.NewTransientInvocationErr(errors.New("empty result"))
	}
	return out, nil
}

func (di DegradingInvokerImpl) stream(ctx context.Context, session domain.StreamingSession, input domain.CapabilityInput, text string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.NewTransientInvocationErr(fmt.Errorf("session panicked: %v", r))
		}
	}()

	input.Text = text
	err = session.InvokeStreaming(ctx, input, func(chunk string) error {
		result = chunk
		return nil
	})
	if err != nil {
		return "", domain.NewTransientInvocationErr(err)
	}
	if strings.TrimSpace(result) == "" {
		return "", domain.NewTransientInvocationErr(errors.New("empty streaming result"))
	}
	return result, nil
}

func validateInvocationInput(req domain.InvocationRequest) error {
	trimmed := strings.TrimSpace(req.Input.Text)
	if trimmed == "" && !req.Input.HasImage() {
		return domain.NewValidationErr("input cannot be empty")
	}
	minLength := req.Constraints.MinLength
	if !req.Input.HasImage() && minLength > 0 && utf8.RuneCountInString(trimmed) < minLength {
		return domain.NewValidationErr(fmt.Sprintf("input must be at least %d characters", minLength))
	}
	return nil
}

// InitDegradingInvoker initializes the DegradingInvoker use case.
type InitDegradingInvoker struct {
	Logger *log.Logger `resolve:""`
}

// Initialize registers the DegradingInvoker use case implementation.
func (i InitDegradingInvoker) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DegradingInvoker](NewDegradingInvokerImpl(i.Logger))
	return ctx, nil
}
