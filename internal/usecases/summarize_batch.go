package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// BatchSummary is the summary of one page of a batch.
type BatchSummary struct {
	Title  string
	URL    string
	Result domain.InvocationResult
}

// SummarizeBatch defines the interface for the SummarizeBatch use case.
type SummarizeBatch interface {
	// Execute summarizes every scriptable page with text, in order. Pages that are not
	// http(s) or have no text are skipped.
	Execute(ctx context.Context, pages []domain.PageDocument, template SummaryTemplate, status domain.StatusFunc) ([]BatchSummary, error)
}

// SummarizeBatchImpl is the implementation of the SummarizeBatch use case.
type SummarizeBatchImpl struct {
	summarizer SummarizeText
	logger     *log.Logger
}

// NewSummarizeBatchImpl creates a new instance of SummarizeBatchImpl.
func NewSummarizeBatchImpl(s SummarizeText, l *log.Logger) SummarizeBatchImpl {
	return SummarizeBatchImpl{summarizer: s, logger: l}
}

// Execute implements SummarizeBatch.
func (sb SummarizeBatchImpl) Execute(ctx context.Context, pages []domain.PageDocument, template SummaryTemplate, status domain.StatusFunc) ([]BatchSummary, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()
	span.SetAttributes(attribute.Int("pages", len(pages)))

	status.Report("Summarizing all tabs...")
	results := make([]BatchSummary, 0, len(pages))
	for _, p := range pages {
		if !domain.IsScriptableURL(p.URL) || strings.TrimSpace(p.Text) == "" {
			continue
		}
		res, err := sb.summarizer.Execute(spanCtx, SummarizeRequest{
			Text:     domain.TruncateRunes(p.Text, domain.DefaultMaxInput),
			Source:   SummarySource_Selection,
			Template: template,
		}, status)
		if err != nil {
			if ctx.Err() != nil {
				telemetry.RecordErrorAndStatus(span, ctx.Err())
				return nil, ctx.Err()
			}
			var validationErr *domain.ValidationErr
			if !errors.As(err, &validationErr) {
				telemetry.RecordErrorAndStatus(span, err)
				return nil, err
			}
			sb.logger.Printf("SummarizeBatch: skipping %s: %v", p.URL, err)
			continue
		}
		results = append(results, BatchSummary{Title: p.Title, URL: p.URL, Result: res})
	}
	status.Report("Finished batch summarization")
	return results, nil
}

// BatchMarkdown renders batch summaries as markdown sections titled by page.
func BatchMarkdown(summaries []BatchSummary) string {
	sections := make([]string, 0, len(summaries))
	for _, s := range summaries {
		title := s.Title
		if title == "" {
			title = s.URL
		}
		sections = append(sections, fmt.Sprintf("## %s\n\n%s\n", title, s.Result.Text()))
	}
	return strings.Join(sections, "\n")
}

// InitSummarizeBatch initializes the SummarizeBatch use case.
type InitSummarizeBatch struct {
	Summarizer SummarizeText `resolve:""`
	Logger     *log.Logger   `resolve:""`
}

// Initialize registers the SummarizeBatch use case implementation.
func (i InitSummarizeBatch) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SummarizeBatch](NewSummarizeBatchImpl(i.Summarizer, i.Logger))
	return ctx, nil
}
