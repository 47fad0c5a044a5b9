package usecases

import (
	"context"
	"log"
	"slices"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// WriterTones are the tones accepted by the writer.
var WriterTones = []string{"formal", "casual", "neutral"}

// GenerateContent defines the interface for the GenerateContent use case.
type GenerateContent interface {
	Execute(ctx context.Context, prompt, tone, outputLang string, status domain.StatusFunc) (domain.InvocationResult, error)
}

// GenerateContentImpl is the implementation of the GenerateContent use case.
type GenerateContentImpl struct {
	runner capabilityRunner
}

// NewGenerateContentImpl creates a new instance of GenerateContentImpl.
func NewGenerateContentImpl(f SessionFactory, i DegradingInvoker, l *log.Logger) GenerateContentImpl {
	return GenerateContentImpl{runner: newCapabilityRunner(f, i, l)}
}

// Execute writes original content for the prompt, in the requested tone (casual by default).
func (gc GenerateContentImpl) Execute(ctx context.Context, prompt, tone, outputLang string, status domain.StatusFunc) (domain.InvocationResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	tone = valueOr(tone, "casual")
	if !slices.Contains(WriterTones, tone) {
		err := domain.NewValidationErr("unsupported writer tone: " + tone)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.InvocationResult{}, err
	}

	d := domain.NewCapabilityDescriptor(domain.CapabilityName_Writer, domain.Tier_Specialized, map[string]string{
		domain.Param_Tone:           tone,
		domain.Param_Length:         "medium",
		domain.Param_Format:         "markdown",
		domain.Param_OutputLanguage: PickOutputLanguage(outputLang),
	})

	status.Report("Writing...")
	res, err := gc.runner.run(spanCtx, tierChain(d), domain.InvocationRequest{
		Input:       domain.CapabilityInput{Text: prompt},
		Constraints: domain.SingleShotConstraints(),
		Status:      status,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.InvocationResult{}, err
	}
	return res, nil
}

// InitGenerateContent initializes the GenerateContent use case.
type InitGenerateContent struct {
	Factory SessionFactory   `resolve:""`
	Invoker DegradingInvoker `resolve:""`
	Logger  *log.Logger      `resolve:""`
}

// Initialize registers the GenerateContent use case implementation.
func (i InitGenerateContent) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateContent](NewGenerateContentImpl(i.Factory, i.Invoker, i.Logger))
	return ctx, nil
}
