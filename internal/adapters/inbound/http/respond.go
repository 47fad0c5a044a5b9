package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case ErrorCode_BadRequest:
		statusCode = http.StatusBadRequest
	case ErrorCode_NotFound:
		statusCode = http.StatusNotFound
	case ErrorCode_Unavailable:
		statusCode = http.StatusServiceUnavailable
	case ErrorCode_Upstream:
		statusCode = http.StatusBadGateway
	}
	respondJSON(w, statusCode, err)
}

// respondResult writes an invocation result. Demo results are successful responses; a failed
// result carries the status code of its error kind.
func respondResult(w http.ResponseWriter, res domain.InvocationResult, status []string) {
	statusCode := http.StatusOK
	if res.Kind == domain.ResultKind_Failure {
		switch res.ErrorKind {
		case domain.ErrorKind_InvalidInput:
			statusCode = http.StatusBadRequest
		case domain.ErrorKind_CapabilityUnavailable:
			statusCode = http.StatusServiceUnavailable
		default:
			statusCode = http.StatusBadGateway
		}
	}
	respondJSON(w, statusCode, toInvocationResp(res, status))
}

// decodeBody decodes the JSON request body into v, answering 400 when it cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, badRequest("invalid request body: "+err.Error()))
		return false
	}
	return true
}

// statusLog collects the progress messages a use case reports.
type statusLog struct {
	messages []string
}

func (s *statusLog) report(msg string) {
	s.messages = append(s.messages, msg)
}
