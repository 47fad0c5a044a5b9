package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const pageText = "Large language models running on device can summarize articles without a network."

var unavailableErr = domain.NewCapabilityUnavailableErr(domain.CapabilityName_Summarizer, domain.Unavailable("Status: unavailable"))

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return data
}

func serve(t *testing.T, server SmartReadServer, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	if server.Logger == nil {
		server.Logger = log.New(io.Discard, "", 0)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	return w
}

func decodeResp[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestSmartReadServer_Summarize(t *testing.T) {
	tests := map[string]struct {
		requestBody     []byte
		setExpectations func(m *usecases.MockSummarizeText)
		expectedStatus  int
		expectedBody    *InvocationResp
		expectedError   *ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, SummarizeReq{Text: pageText, Template: "research", OutputLanguage: "es"}),
			setExpectations: func(m *usecases.MockSummarizeText) {
				m.EXPECT().Execute(mock.Anything, usecases.SummarizeRequest{
					Text:           pageText,
					Template:       usecases.SummaryTemplate_Research,
					OutputLanguage: "es",
				}, mock.Anything).RunAndReturn(func(_ context.Context, _ usecases.SummarizeRequest, status domain.StatusFunc) (domain.InvocationResult, error) {
					status("Generating summary...")
					return domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: "* point"}, 82), nil
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody: &InvocationResp{
				Kind:      "success",
				Text:      "* point",
				Tier:      "specialized",
				InputSize: 82,
				Status:    []string{"Generating summary..."},
			},
		},
		"demo-is-a-success": {
			requestBody: serializeJSON(t, SummarizeReq{Text: pageText}),
			setExpectations: func(m *usecases.MockSummarizeText) {
				m.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.DemoResult("demo summary", unavailableErr.Error()), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &InvocationResp{
				Kind:   "demo",
				Text:   "demo summary",
				Tier:   "demo",
				Reason: "summarizer unavailable: unavailable (Status: unavailable)",
			},
		},
		"failure-result": {
			requestBody: serializeJSON(t, SummarizeReq{Text: pageText}),
			setExpectations: func(m *usecases.MockSummarizeText) {
				m.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.FailureResult(domain.ErrorKind_CapabilityUnavailable, "no model"), nil)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody: &InvocationResp{
				Kind:      "failure",
				Reason:    "no model",
				ErrorKind: "CapabilityUnavailable",
			},
		},
		"text-too-short": {
			requestBody: serializeJSON(t, SummarizeReq{Text: "short"}),
			setExpectations: func(m *usecases.MockSummarizeText) {
				m.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.InvocationResult{}, domain.NewValidationErr("Not enough text on page to summarize"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{Error: Error{
				Code:    ErrorCode_BadRequest,
				Message: "Not enough text on page to summarize",
			}},
		},
		"invalid-json-body": {
			requestBody:     []byte(`{invalid`),
			setExpectations: func(m *usecases.MockSummarizeText) {},
			expectedStatus:  http.StatusBadRequest,
			expectedError: &ErrorResp{Error: Error{
				Code:    ErrorCode_BadRequest,
				Message: "invalid request body: invalid character 'i' looking for beginning of object key string",
			}},
		},
		"internal-error": {
			requestBody: serializeJSON(t, SummarizeReq{Text: pageText}),
			setExpectations: func(m *usecases.MockSummarizeText) {
				m.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.InvocationResult{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: &ErrorResp{Error: Error{
				Code:    ErrorCode_Internal,
				Message: "internal server error",
			}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := usecases.NewMockSummarizeText(t)
			tt.setExpectations(m)

			w := serve(t, SmartReadServer{SummarizeTextUseCase: m}, http.MethodPost, "/api/v1/summaries", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeResp[InvocationResp](t, w))
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeResp[ErrorResp](t, w))
			}
		})
	}
}

func TestSmartReadServer_SummarizeBatch(t *testing.T) {
	pages := []BatchPage{
		{Title: "First", URL: "https://example.com/1", Text: pageText},
		{Title: "Settings", URL: "chrome://settings", Text: pageText},
	}

	tests := map[string]struct {
		setExpectations func(m *usecases.MockSummarizeBatch)
		expectedStatus  int
		expectedBody    *BatchSummarizeResp
	}{
		"success": {
			setExpectations: func(m *usecases.MockSummarizeBatch) {
				m.EXPECT().Execute(mock.Anything, []domain.PageDocument{
					{Title: "First", URL: "https://example.com/1", Text: pageText},
					{Title: "Settings", URL: "chrome://settings", Text: pageText},
				}, usecases.SummaryTemplate_Default, mock.Anything).
					RunAndReturn(func(_ context.Context, _ []domain.PageDocument, _ usecases.SummaryTemplate, status domain.StatusFunc) ([]usecases.BatchSummary, error) {
						status("Summarizing all tabs...")
						return []usecases.BatchSummary{{
							Title:  "First",
							URL:    "https://example.com/1",
							Result: domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: "* one"}, 82),
						}}, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody: &BatchSummarizeResp{
				Summaries: []BatchSummary{{
					Title: "First",
					URL:   "https://example.com/1",
					Result: InvocationResp{
						Kind: "success", Text: "* one", Tier: "specialized", InputSize: 82,
					},
				}},
				Markdown: usecases.BatchMarkdown([]usecases.BatchSummary{{
					Title:  "First",
					URL:    "https://example.com/1",
					Result: domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: "* one"}, 82),
				}}),
				Status: []string{"Summarizing all tabs..."},
			},
		},
		"error": {
			setExpectations: func(m *usecases.MockSummarizeBatch) {
				m.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := usecases.NewMockSummarizeBatch(t)
			tt.setExpectations(m)

			body := serializeJSON(t, BatchSummarizeReq{Pages: pages, Template: "default"})
			w := serve(t, SmartReadServer{SummarizeBatchUseCase: m}, http.MethodPost, "/api/v1/summaries/batch", body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeResp[BatchSummarizeResp](t, w))
			}
		})
	}
}

func TestSmartReadServer_GenerateStructuredSummary(t *testing.T) {
	m := usecases.NewMockGenerateStructuredSummary(t)
	m.EXPECT().Execute(mock.Anything, pageText, domain.PageContext{
		Title:    "Article",
		Headings: []domain.PageHeading{{Level: "h1", Text: "Intro"}},
	}, "ja", mock.Anything).Return(usecases.StructuredSummaryResult{
		Summary:  domain.StructuredSummary{Title: "Article", Summary: "plain", Sentiment: "neutral"},
		Fallback: true,
		Result:   domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: "plain"}, 82),
	}, nil)

	body := serializeJSON(t, StructuredSummaryReq{
		Text:           pageText,
		Page:           PageContext{Title: "Article", Headings: []PageHeading{{Level: "h1", Text: "Intro"}}},
		OutputLanguage: "ja",
	})
	w := serve(t, SmartReadServer{GenerateStructuredSummaryUseCase: m}, http.MethodPost, "/api/v1/summaries/structured", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, StructuredSummaryResp{
		Summary:  StructuredSummary{Title: "Article", Summary: "plain", KeyPoints: []string{}, Sentiment: "neutral"},
		Fallback: true,
		Result:   InvocationResp{Kind: "success", Text: "plain", Tier: "specialized", InputSize: 82},
	}, decodeResp[StructuredSummaryResp](t, w))
}
