package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// ExportSummary defines the interface for the ExportSummary use case.
type ExportSummary interface {
	Execute(ctx context.Context, summary string) (string, error)
}

// ExportSummaryImpl is the implementation of the ExportSummary use case.
type ExportSummaryImpl struct{}

// NewExportSummaryImpl creates a new instance of ExportSummaryImpl.
func NewExportSummaryImpl() ExportSummaryImpl {
	return ExportSummaryImpl{}
}

// Execute renders the summary as a markdown document.
func (ExportSummaryImpl) Execute(_ context.Context, summary string) (string, error) {
	if strings.TrimSpace(summary) == "" {
		return "", domain.NewValidationErr("No summary to export")
	}
	return domain.MarkdownExport(summary), nil
}

// InitExportSummary initializes the ExportSummary use case.
type InitExportSummary struct{}

// Initialize registers the ExportSummary use case implementation.
func (InitExportSummary) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ExportSummary](NewExportSummaryImpl())
	return ctx, nil
}
