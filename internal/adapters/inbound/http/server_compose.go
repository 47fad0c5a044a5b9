package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
)

func (api SmartReadServer) Rewrite(w http.ResponseWriter, r *http.Request) {
	var req RewriteReq
	if !decodeBody(w, r, &req) {
		return
	}

	var status statusLog
	res, err := api.RewriteTextUseCase.Execute(r.Context(), req.Text, usecases.RewriteOptions{
		Tone:           req.Tone,
		Length:         req.Length,
		OutputLanguage: req.OutputLanguage,
	}, status.report)
	if err != nil {
		api.Logger.Printf("SmartReadServer: error rewriting: %v", err)
		respondError(w, toError(err))
		return
	}

	respondResult(w, res, status.messages)
}

func (api SmartReadServer) Write(w http.ResponseWriter, r *http.Request) {
	var req WriteReq
	if !decodeBody(w, r, &req) {
		return
	}

	var status statusLog
	res, err := api.GenerateContentUseCase.Execute(r.Context(), req.Prompt, req.Tone, req.OutputLanguage, status.report)
	if err != nil {
		api.Logger.Printf("SmartReadServer: error writing: %v", err)
		respondError(w, toError(err))
		return
	}

	respondResult(w, res, status.messages)
}

func (api SmartReadServer) Proofread(w http.ResponseWriter, r *http.Request) {
	var req ProofreadReq
	if !decodeBody(w, r, &req) {
		return
	}

	var status statusLog
	res, err := api.ProofreadTextUseCase.Execute(r.Context(), req.Text, status.report)
	if err != nil {
		api.Logger.Printf("SmartReadServer: error proofreading: %v", err)
		respondError(w, toError(err))
		return
	}

	respondResult(w, res, status.messages)
}

func (api SmartReadServer) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeImageReq
	if !decodeBody(w, r, &req) {
		return
	}

	var status statusLog
	res, err := api.AnalyzeImageUseCase.Execute(r.Context(), req.Image, req.Prompt, req.OutputLanguage, status.report)
	if err != nil {
		api.Logger.Printf("SmartReadServer: error analyzing image: %v", err)
		respondError(w, toError(err))
		return
	}

	respondResult(w, res, status.messages)
}
