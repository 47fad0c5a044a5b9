package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSmartReadServer_ListCapabilities(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(m *usecases.MockListCapabilities)
		expectedStatus  int
		expectedBody    *CapabilitiesResp
	}{
		"report": {
			setExpectations: func(m *usecases.MockListCapabilities) {
				m.EXPECT().Query(mock.Anything).Return(usecases.CapabilityReport{
					Capabilities: []usecases.CapabilityStatus{
						{Name: domain.CapabilityName_Summarizer, Tier: domain.Tier_Specialized, Status: domain.Available()},
						{Name: domain.CapabilityName_Writer, Tier: domain.Tier_Specialized, Status: domain.Unavailable("writer API not supported")},
					},
					Translator: []usecases.TranslatorSupport{
						{Language: "ja", Name: "Japanese", Status: domain.AvailabilityStatus{State: domain.AvailabilityState_Downloadable}},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &CapabilitiesResp{
				Capabilities: []CapabilityStatus{
					{Name: "summarizer", Tier: "specialized", Availability: Availability{State: "available"}},
					{Name: "writer", Tier: "specialized", Availability: Availability{State: "unavailable", Reason: "writer API not supported"}},
				},
				Translator: []TranslatorSupport{
					{Language: "ja", Name: "Japanese", Availability: Availability{State: "downloadable"}},
				},
			},
		},
		"error": {
			setExpectations: func(m *usecases.MockListCapabilities) {
				m.EXPECT().Query(mock.Anything).Return(usecases.CapabilityReport{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := usecases.NewMockListCapabilities(t)
			tt.setExpectations(m)

			w := serve(t, SmartReadServer{ListCapabilitiesUseCase: m}, http.MethodGet, "/api/v1/capabilities", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeResp[CapabilitiesResp](t, w))
			}
		})
	}
}

func TestSmartReadServer_ListMenuItems(t *testing.T) {
	m := usecases.NewMockContextMenuRouter(t)
	m.EXPECT().MenuItems(mock.Anything).Return([]domain.MenuItem{
		{ID: domain.MenuAction_DetectLanguage, Title: "Detect Language", Contexts: []string{"selection"}},
	})

	w := serve(t, SmartReadServer{ContextMenuRouterUseCase: m}, http.MethodGet, "/api/v1/menu-items", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, MenuItemsResp{Items: []MenuItem{
		{ID: "detectLanguage", Title: "Detect Language", Contexts: []string{"selection"}},
	}}, decodeResp[MenuItemsResp](t, w))
}

func TestSmartReadServer_RouteMenuAction(t *testing.T) {
	tests := map[string]struct {
		requestBody     MenuActionReq
		setExpectations func(m *usecases.MockContextMenuRouter)
		expectedStatus  int
		expectedBody    *MenuActionResp
	}{
		"completed": {
			requestBody: MenuActionReq{
				Action:        "detectLanguage",
				SelectionText: "Bonjour tout le monde",
				Tab:           Tab{ID: 7, URL: "https://example.com"},
			},
			setExpectations: func(m *usecases.MockContextMenuRouter) {
				m.EXPECT().Route(mock.Anything, domain.UserEvent{
					Action:        domain.MenuAction_DetectLanguage,
					SelectionText: "Bonjour tout le monde",
					Tab:           domain.PageTab{ID: 7, URL: "https://example.com"},
				}).Return(domain.RouteOutcome{
					State:     domain.RouterState_Completed,
					Operation: domain.DispatchedOperation_DetectLanguage,
					Message:   "Detected language: french (93% confidence)",
					Transitions: []domain.RouterState{
						domain.RouterState_Idle, domain.RouterState_AwaitingSelection,
						domain.RouterState_Dispatched, domain.RouterState_Completed,
					},
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody: &MenuActionResp{
				State:       "completed",
				Operation:   "DetectLanguage",
				Message:     "Detected language: french (93% confidence)",
				Transitions: []string{"idle", "awaiting-selection", "dispatched", "completed"},
			},
		},
		"missing-action": {
			requestBody:     MenuActionReq{Tab: Tab{ID: 7}},
			setExpectations: func(m *usecases.MockContextMenuRouter) {},
			expectedStatus:  http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := usecases.NewMockContextMenuRouter(t)
			tt.setExpectations(m)

			w := serve(t, SmartReadServer{ContextMenuRouterUseCase: m}, http.MethodPost, "/api/v1/menu-actions",
				serializeJSON(t, tt.requestBody))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeResp[MenuActionResp](t, w))
			}
		})
	}
}
