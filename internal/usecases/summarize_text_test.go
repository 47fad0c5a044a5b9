package usecases

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-smartread/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSummarizeTextImpl_Execute(t *testing.T) {
	pageText := "Large language models running on device can summarize articles without a network."
	specialized := SummaryDescriptor(SummarizeRequest{})
	general := specialized.WithTier(domain.Tier_GeneralPurpose)
	unavailable := domain.NewCapabilityUnavailableErr(domain.CapabilityName_Summarizer, domain.Unavailable("Status: unavailable"))
	noDemo := mock.MatchedBy(func(r domain.InvocationRequest) bool { return r.Demo == nil })

	tests := map[string]struct {
		req             SummarizeRequest
		setExpectations func(t *testing.T, factory *MockSessionFactory, invoker *MockDegradingInvoker)
		expected        domain.InvocationResult
		expectedErrKind domain.ErrorKind
		expectedStatus  []string
		canceled        bool
	}{
		"specialized-tier": {
			req: SummarizeRequest{Text: pageText},
			setExpectations: func(t *testing.T, factory *MockSessionFactory, invoker *MockDegradingInvoker) {
				session := domain_mocks.NewMockSession(t)
				factory.EXPECT().GetOrCreate(mock.Anything, specialized, mock.Anything).Return(session, nil).Once()
				invoker.EXPECT().Invoke(mock.Anything, session, noDemo).
					Return(domain.SuccessResult("", domain.CapabilityOutput{Text: "* point"}, 82), nil).Once()
			},
			expected:       domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: "* point"}, 82),
			expectedStatus: []string{"Generating summary..."},
		},
		"falls-back-to-general-tier": {
			req: SummarizeRequest{Text: pageText},
			setExpectations: func(t *testing.T, factory *MockSessionFactory, invoker *MockDegradingInvoker) {
				session := domain_mocks.NewMockSession(t)
				factory.EXPECT().GetOrCreate(mock.Anything, specialized, mock.Anything).Return(nil, unavailable).Once()
				factory.EXPECT().GetOrCreate(mock.Anything, general, mock.Anything).Return(session, nil).Once()
				invoker.EXPECT().Invoke(mock.Anything, session, noDemo).
					Return(domain.SuccessResult("", domain.CapabilityOutput{Text: "* point"}, 82), nil).Once()
			},
			expected:       domain.SuccessResult(domain.Tier_GeneralPurpose, domain.CapabilityOutput{Text: "* point"}, 82),
			expectedStatus: []string{"Generating summary..."},
		},
		"failed-tier-hands-over": {
			req: SummarizeRequest{Text: pageText},
			setExpectations: func(t *testing.T, factory *MockSessionFactory, invoker *MockDegradingInvoker) {
				first := domain_mocks.NewMockSession(t)
				second := domain_mocks.NewMockSession(t)
				factory.EXPECT().GetOrCreate(mock.Anything, specialized, mock.Anything).Return(first, nil).Once()
				factory.EXPECT().GetOrCreate(mock.Anything, general, mock.Anything).Return(second, nil).Once()
				invoker.EXPECT().Invoke(mock.Anything, first, noDemo).
					Return(domain.FailureResult(domain.ErrorKind_TransientInvocation, "boom"), nil).Once()
				invoker.EXPECT().Invoke(mock.Anything, second, noDemo).
					Return(domain.SuccessResult("", domain.CapabilityOutput{Text: "* point"}, 82), nil).Once()
			},
			expected:       domain.SuccessResult(domain.Tier_GeneralPurpose, domain.CapabilityOutput{Text: "* point"}, 82),
			expectedStatus: []string{"Generating summary..."},
		},
		"demo-when-no-tier-available": {
			req: SummarizeRequest{Text: pageText},
			setExpectations: func(t *testing.T, factory *MockSessionFactory, invoker *MockDegradingInvoker) {
				factory.EXPECT().GetOrCreate(mock.Anything, mock.Anything, mock.Anything).Return(nil, unavailable).Twice()
			},
			expected:       domain.DemoResult(domain.DemoSummary(pageText), unavailable.Error()),
			expectedStatus: []string{"Generating summary..."},
		},
		"medical-demo": {
			req: SummarizeRequest{Text: "The patient received a new treatment at the hospital."},
			setExpectations: func(t *testing.T, factory *MockSessionFactory, invoker *MockDegradingInvoker) {
				factory.EXPECT().GetOrCreate(mock.Anything, mock.Anything, mock.Anything).Return(nil, unavailable).Twice()
			},
			expected:       domain.DemoResult(domain.DemoSummary("patient"), unavailable.Error()),
			expectedStatus: []string{"Generating summary..."},
		},
		"page-text-too-short": {
			req:             SummarizeRequest{Text: "Too short"},
			setExpectations: func(*testing.T, *MockSessionFactory, *MockDegradingInvoker) {},
			expectedErrKind: domain.ErrorKind_InvalidInput,
			expectedStatus:  []string{"Generating summary..."},
		},
		"short-selection-is-allowed": {
			req: SummarizeRequest{Text: "Too short", Source: SummarySource_Selection},
			setExpectations: func(t *testing.T, factory *MockSessionFactory, invoker *MockDegradingInvoker) {
				session := domain_mocks.NewMockSession(t)
				factory.EXPECT().GetOrCreate(mock.Anything, specialized, mock.Anything).Return(session, nil).Once()
				invoker.EXPECT().Invoke(mock.Anything, session, mock.MatchedBy(func(r domain.InvocationRequest) bool {
					return r.Constraints.MinLength == 1 && r.Input.Text == "Too short"
				})).Return(domain.SuccessResult("", domain.CapabilityOutput{Text: "short"}, 9), nil).Once()
			},
			expected:       domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: "short"}, 9),
			expectedStatus: []string{"Generating summary..."},
		},
		"context-canceled-while-creating": {
			req: SummarizeRequest{Text: pageText},
			setExpectations: func(t *testing.T, factory *MockSessionFactory, invoker *MockDegradingInvoker) {
				factory.EXPECT().GetOrCreate(mock.Anything, specialized, mock.Anything).
					RunAndReturn(func(ctx context.Context, _ domain.CapabilityDescriptor, _ domain.ProgressObserver) (domain.Session, error) {
						return nil, context.Canceled
					}).Once()
			},
			expectedErrKind: domain.ErrorKind_Internal,
			expectedStatus:  []string{"Generating summary..."},
			canceled:        true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			factory := NewMockSessionFactory(t)
			invoker := NewMockDegradingInvoker(t)
			tt.setExpectations(t, factory, invoker)

			ctx := context.Background()
			if tt.canceled {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			var reported []string
			st := NewSummarizeTextImpl(factory, invoker, log.New(io.Discard, "", 0))
			got, err := st.Execute(ctx, tt.req, func(msg string) { reported = append(reported, msg) })
			assert.Equal(t, tt.expectedStatus, reported)
			if tt.expectedErrKind != domain.ErrorKind_None {
				assert.Equal(t, tt.expectedErrKind, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSummaryDescriptor(t *testing.T) {
	tests := map[string]struct {
		req      SummarizeRequest
		expected map[string]string
	}{
		"defaults": {
			req: SummarizeRequest{},
			expected: map[string]string{
				domain.Param_Type:           "key-points",
				domain.Param_Format:         "markdown",
				domain.Param_Length:         "medium",
				domain.Param_OutputLanguage: "en",
			},
		},
		"research-template-in-spanish": {
			req: SummarizeRequest{Template: SummaryTemplate_Research, OutputLanguage: "es-MX", Length: "long"},
			expected: map[string]string{
				domain.Param_Type:           "key-points",
				domain.Param_Format:         "markdown",
				domain.Param_Length:         "long",
				domain.Param_OutputLanguage: "es",
				domain.Param_SharedContext:  "Summarize research: problem, method, key findings, limitations.",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d := SummaryDescriptor(tt.req)
			assert.Equal(t, domain.CapabilityName_Summarizer, d.Name)
			assert.Equal(t, domain.Tier_Specialized, d.Tier)
			assert.Equal(t, tt.expected, d.Parameters)
		})
	}
}

func TestPickOutputLanguage(t *testing.T) {
	tests := map[string]struct {
		preferred string
		expected  string
	}{
		"supported":       {preferred: "ja", expected: "ja"},
		"region-stripped": {preferred: "es-ES", expected: "es"},
		"unsupported":     {preferred: "fr", expected: "en"},
		"empty":           {preferred: "", expected: "en"},
		"upper-case":      {preferred: " EN-us ", expected: "en"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PickOutputLanguage(tt.preferred))
		})
	}
}

func TestInitSummarizeText_Initialize(t *testing.T) {
	init := InitSummarizeText{
		Factory: NewMockSessionFactory(t),
		Invoker: NewMockDegradingInvoker(t),
		Logger:  log.New(io.Discard, "", 0),
	}
	_, err := init.Initialize(context.Background())
	require.NoError(t, err)

	r, err := depend.Resolve[SummarizeText]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
	assert.True(t, strings.HasPrefix(SummaryTemplate_Product.SharedContext(), "Summarize as product highlights"))
}
