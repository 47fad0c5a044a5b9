package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
)

func (api SmartReadServer) ListCapabilities(w http.ResponseWriter, r *http.Request) {
	report, err := api.ListCapabilitiesUseCase.Query(r.Context())
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toCapabilitiesResp(report))
}

func (api SmartReadServer) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toMenuItems(api.ContextMenuRouterUseCase.MenuItems(r.Context())))
}

// RouteMenuAction runs a context-menu click. The outcome is reported in the body, also when
// the action failed.
func (api SmartReadServer) RouteMenuAction(w http.ResponseWriter, r *http.Request) {
	var req MenuActionReq
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Action == "" {
		respondError(w, badRequest("action is required"))
		return
	}

	outcome := api.ContextMenuRouterUseCase.Route(r.Context(), domain.UserEvent{
		Action:        domain.MenuAction(req.Action),
		SelectionText: req.SelectionText,
		Tab:           domain.PageTab{ID: req.Tab.ID, URL: req.Tab.URL, Title: req.Tab.Title},
	})
	respondJSON(w, http.StatusOK, toMenuActionResp(outcome))
}
