package usecases

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultSourceLanguage is the source language assumed when the caller gives none.
const DefaultSourceLanguage = "en"

// TranslateText defines the interface for the TranslateText use case.
type TranslateText interface {
	Execute(ctx context.Context, text, sourceLang, targetLang string, status domain.StatusFunc) (domain.InvocationResult, error)
}

// TranslateTextImpl is the implementation of the TranslateText use case.
type TranslateTextImpl struct {
	runner capabilityRunner
}

// NewTranslateTextImpl creates a new instance of TranslateTextImpl.
func NewTranslateTextImpl(f SessionFactory, i DegradingInvoker, l *log.Logger) TranslateTextImpl {
	return TranslateTextImpl{runner: newCapabilityRunner(f, i, l)}
}

// Execute translates text. Translating to the source language returns the text as is.
func (tt TranslateTextImpl) Execute(ctx context.Context, text, sourceLang, targetLang string, status domain.StatusFunc) (domain.InvocationResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(targetLang) == "" {
		err := domain.NewValidationErr("target language is required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.InvocationResult{}, err
	}

	d := TranslatorDescriptor(sourceLang, targetLang)
	span.SetAttributes(
		attribute.String("source_language", d.Param(domain.Param_SourceLanguage)),
		attribute.String("target_language", d.Param(domain.Param_TargetLanguage)),
	)

	req := domain.InvocationRequest{
		Input:       domain.CapabilityInput{Text: text},
		Constraints: domain.WholeInputConstraints(),
		Demo: func(string) string {
			return domain.DemoTranslation(text, targetLang)
		},
		Status: status,
	}

	if d.IsSameLanguageTranslation() {
		if err := validateInvocationInput(req); telemetry.RecordErrorAndStatus(span, err) {
			return domain.InvocationResult{}, err
		}
		return domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: text}, utf8.RuneCountInString(text)), nil
	}

	status.Report("Translating...")
	res, err := tt.runner.run(spanCtx, tierChain(d), req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.InvocationResult{}, err
	}
	return res, nil
}

// TranslatorDescriptor builds the translator descriptor for a language pair.
func TranslatorDescriptor(sourceLang, targetLang string) domain.CapabilityDescriptor {
	return domain.NewCapabilityDescriptor(domain.CapabilityName_Translator, domain.Tier_Specialized, map[string]string{
		domain.Param_SourceLanguage: strings.ToLower(valueOr(sourceLang, DefaultSourceLanguage)),
		domain.Param_TargetLanguage: strings.ToLower(strings.TrimSpace(targetLang)),
	})
}

// InitTranslateText initializes the TranslateText use case.
type InitTranslateText struct {
	Factory SessionFactory   `resolve:""`
	Invoker DegradingInvoker `resolve:""`
	Logger  *log.Logger      `resolve:""`
}

// Initialize registers the TranslateText use case implementation.
func (i InitTranslateText) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TranslateText](NewTranslateTextImpl(i.Factory, i.Invoker, i.Logger))
	return ctx, nil
}
