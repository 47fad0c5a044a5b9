package usecases

import (
	"context"
	"log"
	"slices"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

var (
	// RewriteTones are the tones accepted by the rewriter.
	RewriteTones = []string{"more-formal", "more-casual", "as-is"}
	// RewriteLengths are the lengths accepted by the rewriter.
	RewriteLengths = []string{"shorter", "longer", "as-is"}
)

// RewriteOptions holds the rewriter options. Empty values mean "as-is".
type RewriteOptions struct {
	Tone           string
	Length         string
	OutputLanguage string
}

// RewriteText defines the interface for the RewriteText use case.
type RewriteText interface {
	Execute(ctx context.Context, text string, opts RewriteOptions, status domain.StatusFunc) (domain.InvocationResult, error)
}

// RewriteTextImpl is the implementation of the RewriteText use case.
type RewriteTextImpl struct {
	runner capabilityRunner
}

// NewRewriteTextImpl creates a new instance of RewriteTextImpl.
func NewRewriteTextImpl(f SessionFactory, i DegradingInvoker, l *log.Logger) RewriteTextImpl {
	return RewriteTextImpl{runner: newCapabilityRunner(f, i, l)}
}

// Execute rewrites text with the rewriter, falling back to the prompt model.
func (rt RewriteTextImpl) Execute(ctx context.Context, text string, opts RewriteOptions, status domain.StatusFunc) (domain.InvocationResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	d, err := RewriterDescriptor(opts)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.InvocationResult{}, err
	}

	status.Report("Rewriting...")
	res, err := rt.runner.run(spanCtx, tierChain(d), domain.InvocationRequest{
		Input:       domain.CapabilityInput{Text: text},
		Constraints: domain.WholeInputConstraints(),
		Demo:        domain.DemoRewrite,
		Status:      status,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.InvocationResult{}, err
	}
	return res, nil
}

// RewriterDescriptor validates the options and builds the rewriter descriptor.
func RewriterDescriptor(opts RewriteOptions) (domain.CapabilityDescriptor, error) {
	tone := valueOr(opts.Tone, "as-is")
	length := valueOr(opts.Length, "as-is")
	if !slices.Contains(RewriteTones, tone) {
		return domain.CapabilityDescriptor{}, domain.NewValidationErr("unsupported rewrite tone: " + tone)
	}
	if !slices.Contains(RewriteLengths, length) {
		return domain.CapabilityDescriptor{}, domain.NewValidationErr("unsupported rewrite length: " + length)
	}
	return domain.NewCapabilityDescriptor(domain.CapabilityName_Rewriter, domain.Tier_Specialized, map[string]string{
		domain.Param_Tone:           tone,
		domain.Param_Length:         length,
		domain.Param_Format:         "markdown",
		domain.Param_OutputLanguage: PickOutputLanguage(opts.OutputLanguage),
	}), nil
}

// InitRewriteText initializes the RewriteText use case.
type InitRewriteText struct {
	Factory SessionFactory   `resolve:""`
	Invoker DegradingInvoker `resolve:""`
	Logger  *log.Logger      `resolve:""`
}

// Initialize registers the RewriteText use case implementation.
func (i InitRewriteText) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RewriteText](NewRewriteTextImpl(i.Factory, i.Invoker, i.Logger))
	return ctx, nil
}
