package usecases

import (
	"context"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// SummaryTemplate selects the shared context given to the summarizer.
type SummaryTemplate string

const (
	SummaryTemplate_Default  SummaryTemplate = "default"
	SummaryTemplate_Product  SummaryTemplate = "product"
	SummaryTemplate_Job      SummaryTemplate = "job"
	SummaryTemplate_Research SummaryTemplate = "research"
)

var summaryTemplateContexts = map[SummaryTemplate]string{
	SummaryTemplate_Product:  "Summarize as product highlights: features, pros/cons, price, comparisons.",
	SummaryTemplate_Job:      "Summarize role: responsibilities, qualifications, location, compensation (if present).",
	SummaryTemplate_Research: "Summarize research: problem, method, key findings, limitations.",
}

// SharedContext returns the summarizer shared context of the template, empty for the default one.
func (t SummaryTemplate) SharedContext() string {
	return summaryTemplateContexts[t]
}

// SummarySource tells where the summarized text comes from.
type SummarySource string

const (
	SummarySource_Page      SummarySource = "page"
	SummarySource_Selection SummarySource = "selection"
)

// MinPageTextLength is the minimum amount of readable text a page must have to be summarized.
const MinPageTextLength = 20

// SummarizeRequest holds the input of the SummarizeText use case.
type SummarizeRequest struct {
	Text           string
	Source         SummarySource
	Template       SummaryTemplate
	OutputLanguage string
	// Type, Format and Length default to key-points, markdown and medium.
	Type   string
	Format string
	Length string
}

// SummarizeText defines the interface for the SummarizeText use case.
type SummarizeText interface {
	Execute(ctx context.Context, req SummarizeRequest, status domain.StatusFunc) (domain.InvocationResult, error)
}

// SummarizeTextImpl is the implementation of the SummarizeText use case.
type SummarizeTextImpl struct {
	runner capabilityRunner
}

// NewSummarizeTextImpl creates a new instance of SummarizeTextImpl.
func NewSummarizeTextImpl(f SessionFactory, i DegradingInvoker, l *log.Logger) SummarizeTextImpl {
	return SummarizeTextImpl{runner: newCapabilityRunner(f, i, l)}
}

// Execute summarizes the text with the best available tier.
func (st SummarizeTextImpl) Execute(ctx context.Context, req SummarizeRequest, status domain.StatusFunc) (domain.InvocationResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	constraints := domain.DefaultInvocationConstraints()
	if req.Source == SummarySource_Page || req.Source == "" {
		constraints.MinLength = MinPageTextLength
	}

	status.Report("Generating summary...")
	res, err := st.runner.run(spanCtx, tierChain(SummaryDescriptor(req)), domain.InvocationRequest{
		Input:       domain.CapabilityInput{Text: strings.TrimSpace(req.Text)},
		Constraints: constraints,
		Demo:        domain.DemoSummary,
		Status:      status,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.InvocationResult{}, err
	}
	return res, nil
}

// SummaryDescriptor builds the summarizer descriptor for the request.
func SummaryDescriptor(req SummarizeRequest) domain.CapabilityDescriptor {
	return domain.NewCapabilityDescriptor(domain.CapabilityName_Summarizer, domain.Tier_Specialized, map[string]string{
		domain.Param_Type:           valueOr(req.Type, "key-points"),
		domain.Param_Format:         valueOr(req.Format, "markdown"),
		domain.Param_Length:         valueOr(req.Length, "medium"),
		domain.Param_OutputLanguage: PickOutputLanguage(req.OutputLanguage),
		domain.Param_SharedContext:  req.Template.SharedContext(),
	})
}

func valueOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// InitSummarizeText initializes the SummarizeText use case.
type InitSummarizeText struct {
	Factory SessionFactory   `resolve:""`
	Invoker DegradingInvoker `resolve:""`
	Logger  *log.Logger      `resolve:""`
}

// Initialize registers the SummarizeText use case implementation.
func (i InitSummarizeText) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SummarizeText](NewSummarizeTextImpl(i.Factory, i.Invoker, i.Logger))
	return ctx, nil
}
