package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ClearSavedSummaries defines the interface for the ClearSavedSummaries use case.
type ClearSavedSummaries interface {
	Execute(ctx context.Context) error
}

// ClearSavedSummariesImpl is the implementation of the ClearSavedSummaries use case.
type ClearSavedSummariesImpl struct {
	repo domain.SavedRecordRepository
}

// NewClearSavedSummariesImpl creates a new instance of ClearSavedSummariesImpl.
func NewClearSavedSummariesImpl(repo domain.SavedRecordRepository) ClearSavedSummariesImpl {
	return ClearSavedSummariesImpl{repo: repo}
}

// Execute removes every saved summary.
func (cs ClearSavedSummariesImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := cs.repo.Clear(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// InitClearSavedSummaries initializes the ClearSavedSummaries use case.
type InitClearSavedSummaries struct {
	Repo domain.SavedRecordRepository `resolve:""`
}

// Initialize registers the ClearSavedSummaries use case implementation.
func (i InitClearSavedSummaries) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ClearSavedSummaries](NewClearSavedSummariesImpl(i.Repo))
	return ctx, nil
}
