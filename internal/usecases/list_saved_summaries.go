package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// SavedSummariesPage is the result of ListSavedSummaries. Total counts every stored record
// so callers can tell "nothing saved" from "no match".
type SavedSummariesPage struct {
	Records []domain.SavedRecord
	Total   int
}

// ListSavedSummaries defines the interface for the ListSavedSummaries use case.
type ListSavedSummaries interface {
	Query(ctx context.Context, query string) (SavedSummariesPage, error)
}

// ListSavedSummariesImpl is the implementation of the ListSavedSummaries use case.
type ListSavedSummariesImpl struct {
	repo domain.SavedRecordRepository
}

// NewListSavedSummariesImpl creates a new instance of ListSavedSummariesImpl.
func NewListSavedSummariesImpl(repo domain.SavedRecordRepository) ListSavedSummariesImpl {
	return ListSavedSummariesImpl{repo: repo}
}

// Query returns the saved summaries whose url or summary contains query, most recent first.
func (ls ListSavedSummariesImpl) Query(ctx context.Context, query string) (SavedSummariesPage, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	records, err := ls.repo.List(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return SavedSummariesPage{}, err
	}

	return SavedSummariesPage{
		Records: domain.FilterSavedRecords(records, query),
		Total:   len(records),
	}, nil
}

// InitListSavedSummaries initializes the ListSavedSummaries use case.
type InitListSavedSummaries struct {
	Repo domain.SavedRecordRepository `resolve:""`
}

// Initialize registers the ListSavedSummaries use case implementation.
func (i InitListSavedSummaries) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListSavedSummaries](NewListSavedSummariesImpl(i.Repo))
	return ctx, nil
}
