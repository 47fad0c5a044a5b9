package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
)

func (api SmartReadServer) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateReq
	if !decodeBody(w, r, &req) {
		return
	}

	var status statusLog
	res, err := api.TranslateTextUseCase.Execute(r.Context(), req.Text, req.SourceLanguage, req.TargetLanguage, status.report)
	if err != nil {
		api.Logger.Printf("SmartReadServer: error translating: %v", err)
		respondError(w, toError(err))
		return
	}

	respondResult(w, res, status.messages)
}

func (api SmartReadServer) DetectLanguage(w http.ResponseWriter, r *http.Request) {
	var req DetectLanguageReq
	if !decodeBody(w, r, &req) {
		return
	}

	detection, err := api.DetectLanguageUseCase.Execute(r.Context(), req.Text)
	if err != nil {
		api.Logger.Printf("SmartReadServer: error detecting language: %v", err)
		errResp := toError(err)
		if errResp.Error.Code != ErrorCode_Internal {
			errResp.Error.Message = usecases.DetectionErrorMessage(err)
		}
		respondError(w, errResp)
		return
	}

	respondJSON(w, http.StatusOK, DetectLanguageResp{
		Language:   detection.Language,
		Name:       domain.LanguageName(detection.Language),
		Confidence: detection.Confidence,
		Message:    usecases.FormatDetection(detection),
	})
}
