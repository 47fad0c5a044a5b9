package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-smartread/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerMocks struct {
	detector    *MockDetectLanguage
	proofreader *MockProofreadText
	probe       *MockCapabilityProbe
	registry    *domain_mocks.MockCapabilityRegistry
	delegate    *MockCrossContextDelegate
	page        *domain_mocks.MockPageSurface
}

func newRouterMocks(t *testing.T) routerMocks {
	return routerMocks{
		detector:    NewMockDetectLanguage(t),
		proofreader: NewMockProofreadText(t),
		probe:       NewMockCapabilityProbe(t),
		registry:    domain_mocks.NewMockCapabilityRegistry(t),
		delegate:    NewMockCrossContextDelegate(t),
		page:        domain_mocks.NewMockPageSurface(t),
	}
}

func (m routerMocks) router() ContextMenuRouterImpl {
	return NewContextMenuRouterImpl(m.detector, m.proofreader, m.probe, m.registry, m.delegate, m.page, log.New(io.Discard, "", 0))
}

func TestContextMenuRouterImpl_Route(t *testing.T) {
	tab := domain.PageTab{ID: 7, URL: "https://example.com/article", Title: "Article"}
	settingsTab := domain.PageTab{ID: 8, URL: "chrome://settings"}
	french := "Ceci est un texte écrit en français."
	overlay := domain.PageMessage{Type: domain.OperationType_OpenComposeOverlay, Mode: string(domain.MenuAction_SummarizeSelection)}

	dispatched := func(final domain.RouterState) []domain.RouterState {
		return []domain.RouterState{
			domain.RouterState_Idle, domain.RouterState_AwaitingSelection, domain.RouterState_Dispatched, final,
		}
	}
	rejected := []domain.RouterState{domain.RouterState_Idle, domain.RouterState_AwaitingSelection, domain.RouterState_Failed}

	tests := map[string]struct {
		event           domain.UserEvent
		setExpectations func(m routerMocks)
		expected        domain.RouteOutcome
	}{
		"detect-language": {
			event: domain.UserEvent{Action: domain.MenuAction_DetectLanguage, SelectionText: french, Tab: tab},
			setExpectations: func(m routerMocks) {
				m.detector.EXPECT().Execute(mock.Anything, french).
					Return(domain.LanguageDetection{Language: "fr", Confidence: 0.93}, nil).Once()
				m.page.EXPECT().ShowMessage(mock.Anything, tab, "Detected language: french (93% confidence)", false).Return(nil).Once()
			},
			expected: domain.RouteOutcome{
				State:       domain.RouterState_Completed,
				Operation:   domain.DispatchedOperation_DetectLanguage,
				Message:     "Detected language: french (93% confidence)",
				Transitions: dispatched(domain.RouterState_Completed),
			},
		},
		"detect-language-low-confidence": {
			event: domain.UserEvent{Action: domain.MenuAction_DetectLanguage, SelectionText: french, Tab: tab},
			setExpectations: func(m routerMocks) {
				m.detector.EXPECT().Execute(mock.Anything, french).
					Return(domain.LanguageDetection{Language: "fr", Confidence: 0.5}, domain.NewLowConfidenceErr(domain.LanguageDetection{Language: "fr", Confidence: 0.5})).Once()
				m.page.EXPECT().ShowMessage(mock.Anything, tab, "Language detection error: Low confidence detection", true).Return(nil).Once()
			},
			expected: domain.RouteOutcome{
				State:       domain.RouterState_Failed,
				Operation:   domain.DispatchedOperation_DetectLanguage,
				Message:     "Language detection error: Low confidence detection",
				IsError:     true,
				Transitions: dispatched(domain.RouterState_Failed),
			},
		},
		"detect-language-without-selection": {
			event: domain.UserEvent{Action: domain.MenuAction_DetectLanguage, SelectionText: "  ", Tab: tab},
			setExpectations: func(m routerMocks) {
				m.page.EXPECT().ShowMessage(mock.Anything, tab, "No text selected for language detection.", true).Return(nil).Once()
			},
			expected: domain.RouteOutcome{
				State:       domain.RouterState_Failed,
				Message:     "No text selected for language detection.",
				IsError:     true,
				Transitions: rejected,
			},
		},
		"detect-language-on-restricted-page": {
			event: domain.UserEvent{Action: domain.MenuAction_DetectLanguage, SelectionText: french, Tab: settingsTab},
			setExpectations: func(m routerMocks) {
				m.page.EXPECT().ShowMessage(mock.Anything, settingsTab, "SmartRead cannot run on this page: chrome://settings", true).
					Return(domain.ErrPageNotConnected).Once()
			},
			expected: domain.RouteOutcome{
				State:       domain.RouterState_Failed,
				Message:     "SmartRead cannot run on this page: chrome://settings",
				IsError:     true,
				Transitions: rejected,
			},
		},
		"proofread-locally": {
			event: domain.UserEvent{Action: domain.MenuAction_ProofreadText, SelectionText: "Ths is rong", Tab: tab},
			setExpectations: func(m routerMocks) {
				m.probe.EXPECT().Probe(mock.Anything, ProofreaderDescriptor()).Return(domain.Available()).Once()
				m.proofreader.EXPECT().Execute(mock.Anything, "Ths is rong", mock.Anything).
					Return(domain.SuccessResult(domain.Tier_Specialized, domain.CapabilityOutput{Text: "This is wrong"}, 11), nil).Once()
				m.page.EXPECT().ReplaceSelection(mock.Anything, tab, "This is wrong").Return(nil).Once()
				m.page.EXPECT().ShowMessage(mock.Anything, tab, "Text proofread successfully!", false).Return(nil).Once()
			},
			expected: domain.RouteOutcome{
				State:       domain.RouterState_Completed,
				Operation:   domain.DispatchedOperation_Proofread,
				Message:     "Text proofread successfully!",
				Transitions: dispatched(domain.RouterState_Completed),
			},
		},
		"proofread-delegated-to-popup": {
			event: domain.UserEvent{Action: domain.MenuAction_ProofreadText, SelectionText: "Ths is rong", Tab: tab},
			setExpectations: func(m routerMocks) {
				m.probe.EXPECT().Probe(mock.Anything, ProofreaderDescriptor()).Return(domain.Unavailable("Status: unavailable")).Once()
				m.page.EXPECT().OpenPopup(mock.Anything).Return(nil).Once()
				m.delegate.EXPECT().Delegate(
					mock.Anything,
					domain.OperationType_ProofreadSelection,
					domain.ProofreadSelectionPayload{Text: "Ths is rong", TabID: 7},
					domain.ExecutionContext_Popup,
					DelegateOptions{},
				).Return(nil, nil).Once()
				m.page.EXPECT().ShowMessage(mock.Anything, tab, "Text proofread successfully!", false).Return(nil).Once()
			},
			expected: domain.RouteOutcome{
				State:       domain.RouterState_Completed,
				Operation:   domain.DispatchedOperation_Proofread,
				Message:     "Text proofread successfully!",
				Transitions: dispatched(domain.RouterState_Completed),
			},
		},
		"proofread-delegation-failed": {
			event: domain.UserEvent{Action: domain.MenuAction_ProofreadText, SelectionText: "Ths is rong", Tab: tab},
			setExpectations: func(m routerMocks) {
				m.probe.EXPECT().Probe(mock.Anything, mock.Anything).Return(domain.Unavailable("x")).Once()
				m.page.EXPECT().OpenPopup(mock.Anything).Return(nil).Once()
				m.delegate.EXPECT().Delegate(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, domain.NewDelegationFailedErr(3, domain.ErrTargetNotReady)).Once()
				m.page.EXPECT().ShowMessage(mock.Anything, tab, ProofreadErrorMessage, true).Return(nil).Once()
			},
			expected: domain.RouteOutcome{
				State:       domain.RouterState_Failed,
				Operation:   domain.DispatchedOperation_Proofread,
				Message:     ProofreadErrorMessage,
				IsError:     true,
				Transitions: dispatched(domain.RouterState_Failed),
			},
		},
		"proofread-without-result": {
			event: domain.UserEvent{Action: domain.MenuAction_ProofreadText, SelectionText: "Ths is rong", Tab: tab},
			setExpectations: func(m routerMocks) {
				m.probe.EXPECT().Probe(mock.Anything, mock.Anything).Return(domain.Available()).Once()
				m.proofreader.EXPECT().Execute(mock.Anything, mock.Anything, mock.Anything).
					Return(domain.FailureResult(domain.ErrorKind_TransientInvocation, "boom"), nil).Once()
				m.page.EXPECT().ShowMessage(mock.Anything, tab, ProofreadErrorMessage, true).Return(nil).Once()
			},
			expected: domain.RouteOutcome{
				State:       domain.RouterState_Failed,
				Operation:   domain.DispatchedOperation_Proofread,
				Message:     ProofreadErrorMessage,
				IsError:     true,
				Transitions: dispatched(domain.RouterState_Failed),
			},
		},
		"compose-overlay-already-loaded": {
			event: domain.UserEvent{Action: domain.MenuAction_SummarizeSelection, Tab: tab},
			setExpectations: func(m routerMocks) {
				m.page.EXPECT().SendToContent(mock.Anything, tab, overlay).Return(nil).Once()
			},
			expected: domain.RouteOutcome{
				State:       domain.RouterState_Completed,
				Operation:   domain.DispatchedOperation_OpenComposeOverlay,
				Transitions: dispatched(domain.RouterState_Completed),
			},
		},
		"compose-overlay-injected-then-sent": {
			event: domain.UserEvent{Action: domain.MenuAction_SummarizeSelection, Tab: tab},
			setExpectations: func(m routerMocks) {
				m.page.EXPECT().SendToContent(mock.Anything, tab, overlay).Return(domain.ErrPageNotConnected).Once()
				m.page.EXPECT().InjectContentScript(mock.Anything, tab, domain.ComposeOverlayScript).Return(nil).Once()
				m.page.EXPECT().SendToContent(mock.Anything, tab, overlay).Return(nil).Once()
			},
			expected: domain.RouteOutcome{
				State:       domain.RouterState_Completed,
				Operation:   domain.DispatchedOperation_OpenComposeOverlay,
				Transitions: dispatched(domain.RouterState_Completed),
			},
		},
		"compose-overlay-injection-failed": {
			event: domain.UserEvent{Action: domain.MenuAction_SummarizeSelection, Tab: tab},
			setExpectations: func(m routerMocks) {
				m.page.EXPECT().SendToContent(mock.Anything, tab, overlay).Return(domain.ErrPageNotConnected).Once()
				m.page.EXPECT().InjectContentScript(mock.Anything, tab, domain.ComposeOverlayScript).Return(errors.New("cannot inject")).Once()
				m.page.EXPECT().ShowMessage(mock.Anything, tab, "Failed to open the compose overlay on this page.", true).Return(nil).Once()
			},
			expected: domain.RouteOutcome{
				State:       domain.RouterState_Failed,
				Operation:   domain.DispatchedOperation_OpenComposeOverlay,
				Message:     "Failed to open the compose overlay on this page.",
				IsError:     true,
				Transitions: dispatched(domain.RouterState_Failed),
			},
		},
		"unsupported-action": {
			event: domain.UserEvent{Action: "translatePage", Tab: tab},
			setExpectations: func(m routerMocks) {
				m.page.EXPECT().ShowMessage(mock.Anything, tab, "Unsupported action: translatePage", true).Return(nil).Once()
			},
			expected: domain.RouteOutcome{
				State:       domain.RouterState_Failed,
				Message:     "Unsupported action: translatePage",
				IsError:     true,
				Transitions: rejected,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newRouterMocks(t)
			tt.setExpectations(m)

			got := m.router().Route(context.Background(), tt.event)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestContextMenuRouterImpl_MenuItems(t *testing.T) {
	tests := map[string]struct {
		proofreaderRegistered bool
		expected              []domain.MenuAction
	}{
		"with-proofreader": {
			proofreaderRegistered: true,
			expected: []domain.MenuAction{
				domain.MenuAction_DetectLanguage,
				domain.MenuAction_ProofreadText,
				domain.MenuAction_SummarizeSelection,
				domain.MenuAction_RewriteSelection,
			},
		},
		"without-proofreader": {
			expected: []domain.MenuAction{
				domain.MenuAction_DetectLanguage,
				domain.MenuAction_SummarizeSelection,
				domain.MenuAction_RewriteSelection,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := newRouterMocks(t)
			var host domain.CapabilityHost
			if tt.proofreaderRegistered {
				host = domain_mocks.NewMockCapabilityHost(t)
			}
			m.registry.EXPECT().Lookup(domain.CapabilityName_Proofreader, domain.Tier_Specialized).
				Return(host, tt.proofreaderRegistered).Once()

			items := m.router().MenuItems(context.Background())
			ids := make([]domain.MenuAction, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
				assert.Equal(t, []string{"selection"}, item.Contexts)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestInitContextMenuRouter_Initialize(t *testing.T) {
	m := newRouterMocks(t)
	init := InitContextMenuRouter{
		Detector:    m.detector,
		Proofreader: m.proofreader,
		Probe:       m.probe,
		Registry:    m.registry,
		Delegate:    m.delegate,
		Page:        m.page,
		Logger:      log.New(io.Discard, "", 0),
	}
	_, err := init.Initialize(context.Background())
	require.NoError(t, err)

	r, err := depend.Resolve[ContextMenuRouter]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
