package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	// MinDetectionTextLength is the shortest text a detector is asked about.
	MinDetectionTextLength = 10
	// MinDetectionConfidence is the confidence a detection must exceed to be reported.
	MinDetectionConfidence = 0.7
)

// DetectLanguage defines the interface for the DetectLanguage use case.
type DetectLanguage interface {
	// Execute returns the most likely language of the text. Detections at or below the
	// confidence threshold fail with *domain.LowConfidenceErr.
	Execute(ctx context.Context, text string) (domain.LanguageDetection, error)
}

// DetectLanguageImpl is the implementation of the DetectLanguage use case.
type DetectLanguageImpl struct {
	runner capabilityRunner
}

// NewDetectLanguageImpl creates a new instance of DetectLanguageImpl.
func NewDetectLanguageImpl(f SessionFactory, i DegradingInvoker, l *log.Logger) DetectLanguageImpl {
	return DetectLanguageImpl{runner: newCapabilityRunner(f, i, l)}
}

// Execute implements DetectLanguage.
func (dl DetectLanguageImpl) Execute(ctx context.Context, text string) (domain.LanguageDetection, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len([]rune(strings.TrimSpace(text))) < MinDetectionTextLength {
		err := domain.NewValidationErr("Text too short for reliable detection")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LanguageDetection{}, err
	}

	constraints := domain.SingleShotConstraints()
	constraints.MinLength = MinDetectionTextLength

	d := domain.NewCapabilityDescriptor(domain.CapabilityName_LanguageDetector, domain.Tier_Specialized, nil)
	res, err := dl.runner.run(spanCtx, []domain.CapabilityDescriptor{d}, domain.InvocationRequest{
		Input:       domain.CapabilityInput{Text: text},
		Constraints: constraints,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LanguageDetection{}, err
	}

	if res.Kind != domain.ResultKind_Success {
		err := domain.NewCapabilityUnavailableErr(domain.CapabilityName_LanguageDetector, domain.Unavailable(res.Reason))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LanguageDetection{}, err
	}

	if len(res.Output.Detections) == 0 {
		err := domain.NewNotFoundErr("No detection result")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LanguageDetection{}, err
	}

	top := res.Output.Detections[0]
	if top.Confidence <= MinDetectionConfidence {
		err := domain.NewLowConfidenceErr(top)
		telemetry.RecordErrorAndStatus(span, err)
		return top, err
	}
	return top, nil
}

// FormatDetection renders a detection the way it is shown to the user.
func FormatDetection(d domain.LanguageDetection) string {
	return fmt.Sprintf("Detected language: %s (%d%% confidence)",
		strings.ToLower(domain.LanguageName(d.Language)),
		int(math.Round(d.Confidence*100)),
	)
}

// DetectionErrorMessage renders a detection failure the way it is shown to the user.
func DetectionErrorMessage(err error) string {
	var unavailableErr *domain.CapabilityUnavailableErr
	if errors.As(err, &unavailableErr) {
		return "Language detection error: " + unavailableErr.Status.Reason
	}
	return "Language detection error: " + err.Error()
}

// InitDetectLanguage initializes the DetectLanguage use case.
type InitDetectLanguage struct {
	Factory SessionFactory   `resolve:""`
	Invoker DegradingInvoker `resolve:""`
	Logger  *log.Logger      `resolve:""`
}

// Initialize registers the DetectLanguage use case implementation.
func (i InitDetectLanguage) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DetectLanguage](NewDetectLanguageImpl(i.Factory, i.Invoker, i.Logger))
	return ctx, nil
}
