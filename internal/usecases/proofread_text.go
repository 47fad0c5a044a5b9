package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ProofreadText defines the interface for the ProofreadText use case.
type ProofreadText interface {
	Execute(ctx context.Context, text string, status domain.StatusFunc) (domain.InvocationResult, error)
}

// ProofreadTextImpl is the implementation of the ProofreadText use case.
type ProofreadTextImpl struct {
	runner capabilityRunner
}

// NewProofreadTextImpl creates a new instance of ProofreadTextImpl.
func NewProofreadTextImpl(f SessionFactory, i DegradingInvoker, l *log.Logger) ProofreadTextImpl {
	return ProofreadTextImpl{runner: newCapabilityRunner(f, i, l)}
}

// Execute returns the corrected text. The input is never truncated, and there is no demo
// stand-in: a corrected text that is not the user's text would be worse than an error.
func (pt ProofreadTextImpl) Execute(ctx context.Context, text string, status domain.StatusFunc) (domain.InvocationResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	status.Report("Proofreading selection...")
	res, err := pt.runner.run(spanCtx, tierChain(ProofreaderDescriptor()), domain.InvocationRequest{
		Input:       domain.CapabilityInput{Text: text},
		Constraints: domain.SingleShotConstraints(),
		Status:      status,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.InvocationResult{}, err
	}
	return res, nil
}

// ProofreaderDescriptor builds the proofreader descriptor. Input is expected in English.
func ProofreaderDescriptor() domain.CapabilityDescriptor {
	return domain.NewCapabilityDescriptor(domain.CapabilityName_Proofreader, domain.Tier_Specialized, map[string]string{
		domain.Param_SourceLanguage: "en",
	})
}

// InitProofreadText initializes the ProofreadText use case.
type InitProofreadText struct {
	Factory SessionFactory   `resolve:""`
	Invoker DegradingInvoker `resolve:""`
	Logger  *log.Logger      `resolve:""`
}

// Initialize registers the ProofreadText use case implementation.
func (i InitProofreadText) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ProofreadText](NewProofreadTextImpl(i.Factory, i.Invoker, i.Logger))
	return ctx, nil
}
