package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSummarizeBatchImpl_Execute(t *testing.T) {
	articleA := domain.PageDocument{Title: "Article A", URL: "https://a.example/post", Text: "First article body with enough text."}
	articleB := domain.PageDocument{Title: "", URL: "http://b.example/", Text: "Second article body with enough text."}
	settings := domain.PageDocument{Title: "Settings", URL: "chrome://settings", Text: "Browser settings page."}
	blank := domain.PageDocument{Title: "Blank", URL: "https://blank.example", Text: "   "}

	resultA := domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: "* A"}, 36)
	resultB := domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: "* B"}, 37)

	tests := map[string]struct {
		pages           []domain.PageDocument
		setExpectations func(summarizer *MockSummarizeText)
		expected        []BatchSummary
		expectErr       bool
	}{
		"skips-unscriptable-and-empty-pages": {
			pages: []domain.PageDocument{articleA, settings, blank, articleB},
			setExpectations: func(summarizer *MockSummarizeText) {
				summarizer.EXPECT().Execute(mock.Anything, SummarizeRequest{
					Text: articleA.Text, Source: SummarySource_Selection, Template: SummaryTemplate_Research,
				}, mock.Anything).Return(resultA, nil).Once()
				summarizer.EXPECT().Execute(mock.Anything, SummarizeRequest{
					Text: articleB.Text, Source: SummarySource_Selection, Template: SummaryTemplate_Research,
				}, mock.Anything).Return(resultB, nil).Once()
			},
			expected: []BatchSummary{
				{Title: "Article A", URL: articleA.URL, Result: resultA},
				{Title: "", URL: articleB.URL, Result: resultB},
			},
		},
		"invalid-page-is-skipped": {
			pages: []domain.PageDocument{articleA, articleB},
			setExpectations: func(summarizer *MockSummarizeText) {
				summarizer.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(r SummarizeRequest) bool { return r.Text == articleA.Text }), mock.Anything).
					Return(domain.InvocationResult{}, domain.NewValidationErr("input cannot be empty")).Once()
				summarizer.EXPECT().Execute(mock.Anything, mock.MatchedBy(func(r SummarizeRequest) bool { return r.Text == articleB.Text }), mock.Anything).
					Return(resultB, nil).Once()
			},
			expected: []BatchSummary{
				{Title: "", URL: articleB.URL, Result: resultB},
			},
		},
		"unexpected-error-stops-batch": {
			pages: []domain.PageDocument{articleA, articleB},
			setExpectations: func(summarizer *MockSummarizeText) {
				summarizer.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.InvocationResult{}, errors.New("boom")).Once()
			},
			expectErr: true,
		},
		"no-pages": {
			pages:           nil,
			setExpectations: func(*MockSummarizeText) {},
			expected:        []BatchSummary{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			summarizer := NewMockSummarizeText(t)
			tt.setExpectations(summarizer)

			var reported []string
			sb := NewSummarizeBatchImpl(summarizer, log.New(io.Discard, "", 0))
			got, err := sb.Execute(context.Background(), tt.pages, SummaryTemplate_Research, func(msg string) { reported = append(reported, msg) })
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, []string{"Summarizing all tabs...", "Finished batch summarization"}, reported)
		})
	}
}

func TestBatchMarkdown(t *testing.T) {
	md := BatchMarkdown([]BatchSummary{
		{Title: "Article A", URL: "https://a.example", Result: domain.SuccessResult("", domain.CapabilityOutput{Text: "* A"}, 1)},
		{URL: "https://b.example", Result: domain.SuccessResult("", domain.CapabilityOutput{Text: "* B"}, 1)},
	})
	assert.Equal(t, "## Article A\n\n* A\n\n## https://b.example\n\n* B\n", md)
}
