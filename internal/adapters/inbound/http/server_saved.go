package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
)

func (api SmartReadServer) ListSavedSummaries(w http.ResponseWriter, r *http.Request) {
	page, err := api.ListSavedSummariesUseCase.Query(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		api.Logger.Printf("SmartReadServer: error listing saved summaries: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := SavedSummariesResp{Items: []SavedSummary{}, Total: page.Total}
	for _, rec := range page.Records {
		resp.Items = append(resp.Items, toSavedSummary(rec))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api SmartReadServer) SaveSummary(w http.ResponseWriter, r *http.Request) {
	var req SaveSummaryReq
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := api.SaveSummaryUseCase.Execute(r.Context(), req.URL, req.Summary)
	if err != nil {
		api.Logger.Printf("SmartReadServer: error saving summary: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toSavedSummary(rec))
}

func (api SmartReadServer) ClearSavedSummaries(w http.ResponseWriter, r *http.Request) {
	if err := api.ClearSavedSummariesUseCase.Execute(r.Context()); err != nil {
		api.Logger.Printf("SmartReadServer: error clearing saved summaries: %v", err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportSummary answers with the markdown document as an attachment.
func (api SmartReadServer) ExportSummary(w http.ResponseWriter, r *http.Request) {
	var req ExportSummaryReq
	if !decodeBody(w, r, &req) {
		return
	}

	doc, err := api.ExportSummaryUseCase.Execute(r.Context(), req.Summary)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+domain.ExportFileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
