package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
)

// structuredSummaryInputSize caps the page text sent with the page context.
const structuredSummaryInputSize = 3000

// StructuredSummaryResult is the outcome of GenerateStructuredSummary.
type StructuredSummaryResult struct {
	Summary domain.StructuredSummary
	// Fallback is set when the structured output could not be produced and Summary only
	// wraps a plain summary.
	Fallback bool
	Result   domain.InvocationResult
}

// GenerateStructuredSummary defines the interface for the GenerateStructuredSummary use case.
type GenerateStructuredSummary interface {
	Execute(ctx context.Context, text string, page domain.PageContext, outputLang string, status domain.StatusFunc) (StructuredSummaryResult, error)
}

// GenerateStructuredSummaryImpl is the implementation of the GenerateStructuredSummary use case.
type GenerateStructuredSummaryImpl struct {
	runner     capabilityRunner
	summarizer SummarizeText
	logger     *log.Logger
}

// NewGenerateStructuredSummaryImpl creates a new instance of GenerateStructuredSummaryImpl.
func NewGenerateStructuredSummaryImpl(f SessionFactory, i DegradingInvoker, s SummarizeText, l *log.Logger) GenerateStructuredSummaryImpl {
	return GenerateStructuredSummaryImpl{
		runner:     newCapabilityRunner(f, i, l),
		summarizer: s,
		logger:     l,
	}
}

// Execute asks the prompt model for a JSON summary of the page. When the prompt model is
// unavailable or answers with something that is not a summary, a plain summary is used.
func (gs GenerateStructuredSummaryImpl) Execute(ctx context.Context, text string, page domain.PageContext, outputLang string, status domain.StatusFunc) (StructuredSummaryResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len([]rune(strings.TrimSpace(text))) < MinPageTextLength {
		err := domain.NewValidationErr("No readable text found.")
		telemetry.RecordErrorAndStatus(span, err)
		return StructuredSummaryResult{}, err
	}

	prompt, err := buildStructuredSummaryPrompt(text, page)
	if telemetry.RecordErrorAndStatus(span, err) {
		return StructuredSummaryResult{}, err
	}

	d := domain.NewCapabilityDescriptor(domain.CapabilityName_PromptModel, domain.Tier_GeneralPurpose, map[string]string{
		domain.Param_Type:           "structured-summary",
		domain.Param_Format:         "json",
		domain.Param_OutputLanguage: PickOutputLanguage(outputLang),
	})

	status.Report("Generating structured summary...")
	res, err := gs.runner.run(spanCtx, []domain.CapabilityDescriptor{d}, domain.InvocationRequest{
		Input:       domain.CapabilityInput{Text: prompt},
		Constraints: domain.SingleShotConstraints(),
		Status:      status,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return StructuredSummaryResult{}, err
	}

	if res.Kind == domain.ResultKind_Success {
		summary, err := parseStructuredSummary(res.Text())
		if err == nil {
			return StructuredSummaryResult{Summary: summary, Result: res}, nil
		}
		gs.logger.Printf("GenerateStructuredSummary: invalid structured output, falling back: %v", err)
	}

	span.SetAttributes(attribute.Bool("fallback", true))
	plain, err := gs.summarizer.Execute(spanCtx, SummarizeRequest{
		Text:           text,
		Source:         SummarySource_Page,
		OutputLanguage: outputLang,
	}, status)
	if telemetry.RecordErrorAndStatus(span, err) {
		return StructuredSummaryResult{}, err
	}

	return StructuredSummaryResult{
		Summary: domain.StructuredSummary{
			Title:   page.Title,
			Summary: plain.Text(),
		}.Normalize(),
		Fallback: true,
		Result:   plain,
	}, nil
}

// structuredSummaryPromptInput is the page description handed to the prompt model.
type structuredSummaryPromptInput struct {
	Title           string   `json:"title"`
	MetaDescription string   `json:"metaDescription"`
	MainHeadings    []string `json:"mainHeadings"`
	Content         string   `json:"content"`
}

func buildStructuredSummaryPrompt(text string, page domain.PageContext) (string, error) {
	headings := make([]string, 0, 5)
	for _, h := range page.Headings {
		if len(headings) == 5 {
			break
		}
		headings = append(headings, h.Text)
	}
	metaDescription := page.Meta["description"]
	if metaDescription == "" {
		metaDescription = "N/A"
	}

	in := structuredSummaryPromptInput{
		Title:           page.Title,
		MetaDescription: metaDescription,
		MainHeadings:    headings,
		Content:         domain.TruncateRunes(text, structuredSummaryInputSize),
	}
	encoded, err := toon.MarshalString(in, toon.WithLengthMarkers(true))
	if err != nil {
		return "", fmt.Errorf("failed to marshal page context: %w", err)
	}
	return "Analyze this content and provide a structured summary:\n\n" + encoded, nil
}

// parseStructuredSummary extracts the JSON object of the model answer, tolerating code fences.
func parseStructuredSummary(raw string) (domain.StructuredSummary, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return domain.StructuredSummary{}, fmt.Errorf("no JSON object in %q", domain.TruncateRunes(raw, 80))
	}

	var s domain.StructuredSummary
	if err := json.Unmarshal([]byte(raw[start:end+1]), &s); err != nil {
		return domain.StructuredSummary{}, fmt.Errorf("failed to unmarshal structured summary: %w", err)
	}
	if strings.TrimSpace(s.Summary) == "" {
		return domain.StructuredSummary{}, fmt.Errorf("structured summary has no summary")
	}
	return s.Normalize(), nil
}

// InitGenerateStructuredSummary initializes the GenerateStructuredSummary use case.
type InitGenerateStructuredSummary struct {
	Factory    SessionFactory   `resolve:""`
	Invoker    DegradingInvoker `resolve:""`
	Summarizer SummarizeText    `resolve:""`
	Logger     *log.Logger      `resolve:""`
}

// Initialize registers the GenerateStructuredSummary use case implementation.
func (i InitGenerateStructuredSummary) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateStructuredSummary](NewGenerateStructuredSummaryImpl(i.Factory, i.Invoker, i.Summarizer, i.Logger))
	return ctx, nil
}
