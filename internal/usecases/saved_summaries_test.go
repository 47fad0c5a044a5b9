package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-smartread/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryRecords is an in-memory domain.SavedRecordRepository.
type memoryRecords struct {
	mu      sync.Mutex
	records []domain.SavedRecord
}

func (m *memoryRecords) Prepend(_ context.Context, record domain.SavedRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append([]domain.SavedRecord{record}, m.records...)
	return nil
}

func (m *memoryRecords) List(context.Context) ([]domain.SavedRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.SavedRecord{}, m.records...), nil
}

func (m *memoryRecords) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	return nil
}

func TestSaveSummaryImpl_Execute(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	tests := map[string]struct {
		url             string
		summary         string
		setExpectations func(repo *domain_mocks.MockSavedRecordRepository, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expected        domain.SavedRecord
		expectedErr     error
	}{
		"success": {
			url:     "https://example.com/article",
			summary: "* point",
			setExpectations: func(repo *domain_mocks.MockSavedRecordRepository, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
				repo.EXPECT().Prepend(mock.Anything, domain.SavedRecord{
					URL: "https://example.com/article", Summary: "* point", Date: fixedTime,
				}).Return(nil).Once()
			},
			expected: domain.SavedRecord{URL: "https://example.com/article", Summary: "* point", Date: fixedTime},
		},
		"empty-summary": {
			url:     "https://example.com/article",
			summary: "  ",
			setExpectations: func(repo *domain_mocks.MockSavedRecordRepository, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
			},
			expectedErr: domain.NewValidationErr("summary cannot be empty"),
		},
		"repository-error": {
			url:     "https://example.com/article",
			summary: "* point",
			setExpectations: func(repo *domain_mocks.MockSavedRecordRepository, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
				repo.EXPECT().Prepend(mock.Anything, mock.Anything).Return(errors.New("database error")).Once()
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockSavedRecordRepository(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			tt.setExpectations(repo, timeProvider)

			got, err := NewSaveSummaryImpl(repo, timeProvider).Execute(context.Background(), tt.url, tt.summary)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestListSavedSummariesImpl_Query(t *testing.T) {
	records := []domain.SavedRecord{
		{URL: "https://news.example/ai", Summary: "* on-device models", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{URL: "https://recipes.example/bread", Summary: "* sourdough", Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	tests := map[string]struct {
		query           string
		setExpectations func(repo *domain_mocks.MockSavedRecordRepository)
		expected        SavedSummariesPage
		expectErr       bool
	}{
		"all": {
			setExpectations: func(repo *domain_mocks.MockSavedRecordRepository) {
				repo.EXPECT().List(mock.Anything).Return(records, nil).Once()
			},
			expected: SavedSummariesPage{Records: records, Total: 2},
		},
		"matches-url-ignoring-case": {
			query: "RECIPES",
			setExpectations: func(repo *domain_mocks.MockSavedRecordRepository) {
				repo.EXPECT().List(mock.Anything).Return(records, nil).Once()
			},
			expected: SavedSummariesPage{Records: records[1:], Total: 2},
		},
		"matches-summary": {
			query: "on-device",
			setExpectations: func(repo *domain_mocks.MockSavedRecordRepository) {
				repo.EXPECT().List(mock.Anything).Return(records, nil).Once()
			},
			expected: SavedSummariesPage{Records: records[:1], Total: 2},
		},
		"no-match": {
			query: "football",
			setExpectations: func(repo *domain_mocks.MockSavedRecordRepository) {
				repo.EXPECT().List(mock.Anything).Return(records, nil).Once()
			},
			expected: SavedSummariesPage{Records: []domain.SavedRecord{}, Total: 2},
		},
		"repository-error": {
			setExpectations: func(repo *domain_mocks.MockSavedRecordRepository) {
				repo.EXPECT().List(mock.Anything).Return(nil, errors.New("database error")).Once()
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockSavedRecordRepository(t)
			tt.setExpectations(repo)

			got, err := NewListSavedSummariesImpl(repo).Query(context.Background(), tt.query)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSavedSummaries_RoundTrip(t *testing.T) {
	repo := &memoryRecords{}
	timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
	first := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	timeProvider.EXPECT().Now().Return(first).Once()
	timeProvider.EXPECT().Now().Return(second).Once()

	save := NewSaveSummaryImpl(repo, timeProvider)
	list := NewListSavedSummariesImpl(repo)
	clearAll := NewClearSavedSummariesImpl(repo)

	_, err := save.Execute(context.Background(), "https://a.example", "first")
	require.NoError(t, err)
	_, err = save.Execute(context.Background(), "https://b.example", "second")
	require.NoError(t, err)

	page, err := list.Query(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []domain.SavedRecord{
		{URL: "https://b.example", Summary: "second", Date: second},
		{URL: "https://a.example", Summary: "first", Date: first},
	}, page.Records)

	require.NoError(t, clearAll.Execute(context.Background()))
	page, err = list.Query(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, page.Records)
	assert.Zero(t, page.Total)
}

func TestClearSavedSummariesImpl_Execute(t *testing.T) {
	repo := domain_mocks.NewMockSavedRecordRepository(t)
	repo.EXPECT().Clear(mock.Anything).Return(errors.New("database error")).Once()

	err := NewClearSavedSummariesImpl(repo).Execute(context.Background())
	assert.EqualError(t, err, "database error")
}

func TestExportSummaryImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		summary         string
		expected        string
		expectedErrKind domain.ErrorKind
	}{
		"markdown": {
			summary:  "* point one\n* point two",
			expected: "# SmartRead Summary\n\n* point one\n* point two",
		},
		"nothing-to-export": {
			summary:         " ",
			expectedErrKind: domain.ErrorKind_InvalidInput,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NewExportSummaryImpl().Execute(context.Background(), tt.summary)
			assert.Equal(t, tt.expectedErrKind, domain.KindOf(err))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitSavedSummaries_Initialize(t *testing.T) {
	repo := domain_mocks.NewMockSavedRecordRepository(t)
	ctx := context.Background()

	_, err := InitSaveSummary{Repo: repo, TimeProvider: domain_mocks.NewMockCurrentTimeProvider(t)}.Initialize(ctx)
	require.NoError(t, err)
	_, err = InitListSavedSummaries{Repo: repo}.Initialize(ctx)
	require.NoError(t, err)
	_, err = InitClearSavedSummaries{Repo: repo}.Initialize(ctx)
	require.NoError(t, err)
	_, err = InitExportSummary{}.Initialize(ctx)
	require.NoError(t, err)

	_, err = depend.Resolve[SaveSummary]()
	assert.NoError(t, err)
	_, err = depend.Resolve[ListSavedSummaries]()
	assert.NoError(t, err)
	_, err = depend.Resolve[ClearSavedSummaries]()
	assert.NoError(t, err)
	_, err = depend.Resolve[ExportSummary]()
	assert.NoError(t, err)
}
