package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// connect serves s over in-memory transports and returns a connected client session.
func connect(t *testing.T, s SmartReadMCPServer) *gomcp.ClientSession {
	t.Helper()

	ctx := context.Background()
	clientTransport, serverTransport := gomcp.NewInMemoryTransports()

	ss, err := s.NewServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := gomcp.NewClient(&gomcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func structured[T any](t *testing.T, res *gomcp.CallToolResult) T {
	t.Helper()

	var v T
	b, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &v))
	return v
}

func errorText(t *testing.T, res *gomcp.CallToolResult) string {
	t.Helper()

	require.True(t, res.IsError)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*gomcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestSmartReadMCPServer_Tools(t *testing.T) {
	tools := []string{
		"detect_language", "list_capabilities", "proofread", "rewrite", "save_summary",
		"search_saved_summaries", "summarize", "translate", "write",
	}

	cs := connect(t, SmartReadMCPServer{Logger: log.New(io.Discard, "", 0), Version: "test"})
	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, tools, names)
}

func TestSmartReadMCPServer_Summarize(t *testing.T) {
	text := "Large language models running on device can summarize articles without a network."

	tests := map[string]struct {
		setExpectations func(m *usecases.MockSummarizeText)
		expected        *ResultOutput
		expectedError   string
	}{
		"summarized": {
			setExpectations: func(m *usecases.MockSummarizeText) {
				m.EXPECT().Execute(mock.Anything, usecases.SummarizeRequest{
					Text:     text,
					Template: usecases.SummaryTemplate_Job,
				}, mock.Anything).Return(domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: "* point"}, 82), nil)
			},
			expected: &ResultOutput{Kind: "success", Text: "* point", Tier: "specialized"},
		},
		"demo": {
			setExpectations: func(m *usecases.MockSummarizeText) {
				m.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.DemoResult("demo summary", "summarizer unavailable"), nil)
			},
			expected: &ResultOutput{Kind: "demo", Text: "demo summary", Tier: "demo", Reason: "summarizer unavailable"},
		},
		"failure-is-a-tool-error": {
			setExpectations: func(m *usecases.MockSummarizeText) {
				m.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.FailureResult(domain.ErrorKind_CapabilityUnavailable, "summarizer unavailable"), nil)
			},
			expectedError: "summarizer unavailable",
		},
		"validation-error": {
			setExpectations: func(m *usecases.MockSummarizeText) {
				m.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.InvocationResult{}, domain.NewValidationErr("Not enough text on page to summarize"))
			},
			expectedError: "Not enough text on page to summarize",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := usecases.NewMockSummarizeText(t)
			tt.setExpectations(m)

			cs := connect(t, SmartReadMCPServer{SummarizeTextUseCase: m, Logger: log.New(io.Discard, "", 0)})
			res, err := cs.CallTool(context.Background(), &gomcp.CallToolParams{
				Name:      "summarize",
				Arguments: map[string]any{"text": text, "template": "job"},
			})
			require.NoError(t, err)

			if tt.expectedError != "" {
				assert.Contains(t, errorText(t, res), tt.expectedError)
				return
			}
			assert.False(t, res.IsError)
			assert.Equal(t, *tt.expected, structured[ResultOutput](t, res))
		})
	}
}

func TestSmartReadMCPServer_Translate(t *testing.T) {
	m := usecases.NewMockTranslateText(t)
	m.EXPECT().Execute(mock.Anything, "hello", "", "es", mock.Anything).
		Return(domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: "hola"}, 5), nil)

	cs := connect(t, SmartReadMCPServer{TranslateTextUseCase: m})
	res, err := cs.CallTool(context.Background(), &gomcp.CallToolParams{
		Name:      "translate",
		Arguments: map[string]any{"text": "hello", "targetLanguage": "es"},
	})
	require.NoError(t, err)
	assert.Equal(t, ResultOutput{Kind: "success", Text: "hola", Tier: "specialized"}, structured[ResultOutput](t, res))
}

func TestSmartReadMCPServer_DetectLanguage(t *testing.T) {
	tests := map[string]struct {
		detection     domain.LanguageDetection
		err           error
		expected      *DetectLanguageOutput
		expectedError string
	}{
		"detected": {
			detection: domain.LanguageDetection{Language: "fr", Confidence: 0.93},
			expected: &DetectLanguageOutput{
				Language:   "fr",
				Name:       "French",
				Confidence: 0.93,
				Message:    "Detected language: french (93% confidence)",
			},
		},
		"low-confidence": {
			detection:     domain.LanguageDetection{Language: "fr", Confidence: 0.4},
			err:           domain.NewLowConfidenceErr(domain.LanguageDetection{Language: "fr", Confidence: 0.4}),
			expectedError: "Language detection error: Low confidence detection",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := usecases.NewMockDetectLanguage(t)
			m.EXPECT().Execute(mock.Anything, "Bonjour tout le monde").Return(tt.detection, tt.err)

			cs := connect(t, SmartReadMCPServer{DetectLanguageUseCase: m})
			res, err := cs.CallTool(context.Background(), &gomcp.CallToolParams{
				Name:      "detect_language",
				Arguments: map[string]any{"text": "Bonjour tout le monde"},
			})
			require.NoError(t, err)

			if tt.expectedError != "" {
				assert.Contains(t, errorText(t, res), tt.expectedError)
				return
			}
			assert.Equal(t, *tt.expected, structured[DetectLanguageOutput](t, res))
		})
	}
}

func TestSmartReadMCPServer_Compose(t *testing.T) {
	tests := map[string]struct {
		tool            string
		arguments       map[string]any
		setExpectations func(s *SmartReadMCPServer, t *testing.T)
		expected        ResultOutput
	}{
		"proofread": {
			tool:      "proofread",
			arguments: map[string]any{"text": "Ths is rong"},
			setExpectations: func(s *SmartReadMCPServer, t *testing.T) {
				m := usecases.NewMockProofreadText(t)
				m.EXPECT().Execute(mock.Anything, "Ths is rong", mock.Anything).
					Return(domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: "This is wrong"}, 11), nil)
				s.ProofreadTextUseCase = m
			},
			expected: ResultOutput{Kind: "success", Text: "This is wrong", Tier: "specialized"},
		},
		"rewrite": {
			tool:      "rewrite",
			arguments: map[string]any{"text": "hey there", "tone": "more-formal"},
			setExpectations: func(s *SmartReadMCPServer, t *testing.T) {
				m := usecases.NewMockRewriteText(t)
				m.EXPECT().Execute(mock.Anything, "hey there", usecases.RewriteOptions{Tone: "more-formal"}, mock.Anything).
					Return(domain.SuccessResult(domain.Tier_GeneralPurpose, domain.CapabilityOutput{Text: "Good afternoon."}, 9), nil)
				s.RewriteTextUseCase = m
			},
			expected: ResultOutput{Kind: "success", Text: "Good afternoon.", Tier: "general"},
		},
		"write": {
			tool:      "write",
			arguments: map[string]any{"prompt": "a thank-you note"},
			setExpectations: func(s *SmartReadMCPServer, t *testing.T) {
				m := usecases.NewMockGenerateContent(t)
				m.EXPECT().Execute(mock.Anything, "a thank-you note", "", "", mock.Anything).
					Return(domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: "Thank you!"}, 16), nil)
				s.GenerateContentUseCase = m
			},
			expected: ResultOutput{Kind: "success", Text: "Thank you!", Tier: "specialized"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := SmartReadMCPServer{}
			tt.setExpectations(&s, t)

			cs := connect(t, s)
			res, err := cs.CallTool(context.Background(), &gomcp.CallToolParams{Name: tt.tool, Arguments: tt.arguments})
			require.NoError(t, err)
			assert.False(t, res.IsError)
			assert.Equal(t, tt.expected, structured[ResultOutput](t, res))
		})
	}
}

func TestSmartReadMCPServer_ListCapabilities(t *testing.T) {
	m := usecases.NewMockListCapabilities(t)
	m.EXPECT().Query(mock.Anything).Return(usecases.CapabilityReport{
		Capabilities: []usecases.CapabilityStatus{
			{Name: domain.CapabilityName_Proofreader, Tier: domain.Tier_Specialized, Status: domain.Unavailable("proofreader API not supported")},
		},
	}, nil)

	cs := connect(t, SmartReadMCPServer{ListCapabilitiesUseCase: m})
	res, err := cs.CallTool(context.Background(), &gomcp.CallToolParams{Name: "list_capabilities", Arguments: map[string]any{}})
	require.NoError(t, err)
	assert.Equal(t, ListCapabilitiesOutput{Capabilities: []CapabilityOutput{
		{Name: "proofreader", Tier: "specialized", State: "unavailable", Reason: "proofreader API not supported"},
	}}, structured[ListCapabilitiesOutput](t, res))
}

func TestSmartReadMCPServer_SavedSummaries(t *testing.T) {
	savedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	record := domain.SavedRecord{URL: "https://example.com", Summary: "* point", Date: savedAt}

	t.Run("search", func(t *testing.T) {
		m := usecases.NewMockListSavedSummaries(t)
		m.EXPECT().Query(mock.Anything, "example").Return(usecases.SavedSummariesPage{
			Records: []domain.SavedRecord{record},
			Total:   2,
		}, nil)

		cs := connect(t, SmartReadMCPServer{ListSavedSummariesUseCase: m})
		res, err := cs.CallTool(context.Background(), &gomcp.CallToolParams{
			Name:      "search_saved_summaries",
			Arguments: map[string]any{"query": "example"},
		})
		require.NoError(t, err)
		assert.Equal(t, SearchSavedOutput{
			Items: []SavedSummaryOutput{{URL: "https://example.com", Summary: "* point", Date: "2026-03-14T09:30:00Z"}},
			Total: 2,
		}, structured[SearchSavedOutput](t, res))
	})

	t.Run("save", func(t *testing.T) {
		m := usecases.NewMockSaveSummary(t)
		m.EXPECT().Execute(mock.Anything, "https://example.com", "* point").Return(record, nil)

		cs := connect(t, SmartReadMCPServer{SaveSummaryUseCase: m})
		res, err := cs.CallTool(context.Background(), &gomcp.CallToolParams{
			Name:      "save_summary",
			Arguments: map[string]any{"url": "https://example.com", "summary": "* point"},
		})
		require.NoError(t, err)
		assert.Equal(t, SavedSummaryOutput{URL: "https://example.com", Summary: "* point", Date: "2026-03-14T09:30:00Z"},
			structured[SavedSummaryOutput](t, res))
	})

	t.Run("search-error", func(t *testing.T) {
		m := usecases.NewMockListSavedSummaries(t)
		m.EXPECT().Query(mock.Anything, "").Return(usecases.SavedSummariesPage{}, errors.New("db down"))

		cs := connect(t, SmartReadMCPServer{ListSavedSummariesUseCase: m})
		res, err := cs.CallTool(context.Background(), &gomcp.CallToolParams{
			Name:      "search_saved_summaries",
			Arguments: map[string]any{},
		})
		require.NoError(t, err)
		assert.Contains(t, errorText(t, res), "db down")
	})
}
