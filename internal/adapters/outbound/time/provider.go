package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is the wall clock. Saved summaries are dated with it, in UTC.
type CurrentTimeProvider struct{}

// Now returns the current time in UTC.
func (CurrentTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// InitCurrentTimeProvider registers the CurrentTimeProvider in the dependency container.
type InitCurrentTimeProvider struct{}

// Initialize registers the CurrentTimeProvider.
func (InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.CurrentTimeProvider](CurrentTimeProvider{})
	return ctx, nil
}
