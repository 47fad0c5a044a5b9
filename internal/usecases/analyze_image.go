package usecases

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// DefaultImagePrompt is the question asked about an image when the user gives none.
const DefaultImagePrompt = "Describe this image."

// AnalyzeImage defines the interface for the AnalyzeImage use case.
type AnalyzeImage interface {
	Execute(ctx context.Context, image []byte, prompt, outputLang string, status domain.StatusFunc) (domain.InvocationResult, error)
}

// AnalyzeImageImpl is the implementation of the AnalyzeImage use case.
type AnalyzeImageImpl struct {
	runner capabilityRunner
}

// NewAnalyzeImageImpl creates a new instance of AnalyzeImageImpl.
func NewAnalyzeImageImpl(f SessionFactory, i DegradingInvoker, l *log.Logger) AnalyzeImageImpl {
	return AnalyzeImageImpl{runner: newCapabilityRunner(f, i, l)}
}

// Execute asks the multimodal prompt model a question about an image. Only the
// general-purpose tier can see images.
func (ai AnalyzeImageImpl) Execute(ctx context.Context, image []byte, prompt, outputLang string, status domain.StatusFunc) (domain.InvocationResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(image) == 0 {
		err := domain.NewValidationErr("image cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.InvocationResult{}, err
	}

	mime := http.DetectContentType(image)
	if !strings.HasPrefix(mime, "image/") {
		err := domain.NewValidationErr("unsupported image type: " + mime)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.InvocationResult{}, err
	}

	prompt = valueOr(prompt, DefaultImagePrompt)
	d := domain.NewCapabilityDescriptor(domain.CapabilityName_PromptModel, domain.Tier_GeneralPurpose, map[string]string{
		domain.Param_Modality:       "image",
		domain.Param_OutputLanguage: PickOutputLanguage(outputLang),
	})

	status.Report("Analyzing image...")
	res, err := ai.runner.run(spanCtx, []domain.CapabilityDescriptor{d}, domain.InvocationRequest{
		Input:       domain.CapabilityInput{Text: prompt, Image: image, ImageMIMEType: mime},
		Constraints: domain.SingleShotConstraints(),
		Demo:        domain.DemoImageAnalysis,
		Status:      status,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.InvocationResult{}, err
	}
	return res, nil
}

// InitAnalyzeImage initializes the AnalyzeImage use case.
type InitAnalyzeImage struct {
	Factory SessionFactory   `resolve:""`
	Invoker DegradingInvoker `resolve:""`
	Logger  *log.Logger      `resolve:""`
}

// Initialize registers the AnalyzeImage use case implementation.
func (i InitAnalyzeImage) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AnalyzeImage](NewAnalyzeImageImpl(i.Factory, i.Invoker, i.Logger))
	return ctx, nil
}
