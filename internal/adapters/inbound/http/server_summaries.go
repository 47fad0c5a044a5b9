package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
)

func (api SmartReadServer) Summarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeReq
	if !decodeBody(w, r, &req) {
		return
	}

	var status statusLog
	res, err := api.SummarizeTextUseCase.Execute(r.Context(), usecases.SummarizeRequest{
		Text:           req.Text,
		Source:         usecases.SummarySource(req.Source),
		Template:       usecases.SummaryTemplate(req.Template),
		OutputLanguage: req.OutputLanguage,
		Type:           req.Type,
		Format:         req.Format,
		Length:         req.Length,
	}, status.report)
	if err != nil {
		api.Logger.Printf("SmartReadServer: error summarizing: %v", err)
		respondError(w, toError(err))
		return
	}

	respondResult(w, res, status.messages)
}

func (api SmartReadServer) SummarizeBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchSummarizeReq
	if !decodeBody(w, r, &req) {
		return
	}

	pages := make([]domain.PageDocument, 0, len(req.Pages))
	for _, p := range req.Pages {
		pages = append(pages, domain.PageDocument{Title: p.Title, URL: p.URL, Text: p.Text})
	}

	var status statusLog
	summaries, err := api.SummarizeBatchUseCase.Execute(r.Context(), pages, usecases.SummaryTemplate(req.Template), status.report)
	if err != nil {
		api.Logger.Printf("SmartReadServer: error summarizing batch: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := BatchSummarizeResp{
		Summaries: []BatchSummary{},
		Markdown:  usecases.BatchMarkdown(summaries),
		Status:    status.messages,
	}
	for _, s := range summaries {
		resp.Summaries = append(resp.Summaries, BatchSummary{
			Title:  s.Title,
			URL:    s.URL,
			Result: toInvocationResp(s.Result, nil),
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api SmartReadServer) GenerateStructuredSummary(w http.ResponseWriter, r *http.Request) {
	var req StructuredSummaryReq
	if !decodeBody(w, r, &req) {
		return
	}

	var status statusLog
	res, err := api.GenerateStructuredSummaryUseCase.Execute(r.Context(), req.Text, toPageContext(req.Page), req.OutputLanguage, status.report)
	if err != nil {
		api.Logger.Printf("SmartReadServer: error generating structured summary: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, StructuredSummaryResp{
		Summary:  toStructuredSummary(res.Summary),
		Fallback: res.Fallback,
		Result:   toInvocationResp(res.Result, status.messages),
	})
}
