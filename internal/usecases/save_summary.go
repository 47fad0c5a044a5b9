package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// SaveSummary defines the interface for the SaveSummary use case.
type SaveSummary interface {
	Execute(ctx context.Context, url, summary string) (domain.SavedRecord, error)
}

// SaveSummaryImpl is the implementation of the SaveSummary use case.
type SaveSummaryImpl struct {
	repo         domain.SavedRecordRepository
	timeProvider domain.CurrentTimeProvider
}

// NewSaveSummaryImpl creates a new instance of SaveSummaryImpl.
func NewSaveSummaryImpl(repo domain.SavedRecordRepository, tp domain.CurrentTimeProvider) SaveSummaryImpl {
	return SaveSummaryImpl{repo: repo, timeProvider: tp}
}

// Execute stores the summary at the head of the saved list.
func (ss SaveSummaryImpl) Execute(ctx context.Context, url, summary string) (domain.SavedRecord, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	record := domain.SavedRecord{
		URL:     url,
		Summary: summary,
		Date:    ss.timeProvider.Now().UTC(),
	}
	if err := record.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.SavedRecord{}, err
	}

	if err := ss.repo.Prepend(spanCtx, record); telemetry.RecordErrorAndStatus(span, err) {
		return domain.SavedRecord{}, err
	}
	return record, nil
}

// InitSaveSummary initializes the SaveSummary use case.
type InitSaveSummary struct {
	Repo         domain.SavedRecordRepository `resolve:""`
	TimeProvider domain.CurrentTimeProvider   `resolve:""`
}

// Initialize registers the SaveSummary use case implementation.
func (i InitSaveSummary) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SaveSummary](NewSaveSummaryImpl(i.Repo, i.TimeProvider))
	return ctx, nil
}
