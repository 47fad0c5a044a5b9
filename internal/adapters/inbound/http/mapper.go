package http

import (
	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
)

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch domain.KindOf(err) {
	case domain.ErrorKind_InvalidInput:
		errResp.Error.Code = ErrorCode_BadRequest
		errResp.Error.Message = err.Error()
	case domain.ErrorKind_NotFound:
		errResp.Error.Code = ErrorCode_NotFound
		errResp.Error.Message = err.Error()
	case domain.ErrorKind_CapabilityUnavailable:
		errResp.Error.Code = ErrorCode_Unavailable
		errResp.Error.Message = err.Error()
	case domain.ErrorKind_DelegationFailed, domain.ErrorKind_DomainError:
		errResp.Error.Code = ErrorCode_Upstream
		errResp.Error.Message = err.Error()
	default:
		errResp.Error.Code = ErrorCode_Internal
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func badRequest(message string) ErrorResp {
	return ErrorResp{Error: Error{Code: ErrorCode_BadRequest, Message: message}}
}

func toInvocationResp(res domain.InvocationResult, status []string) InvocationResp {
	return InvocationResp{
		Kind:      string(res.Kind),
		Text:      res.Text(),
		Tier:      string(res.Tier),
		Reason:    res.Reason,
		ErrorKind: string(res.ErrorKind),
		InputSize: res.InputSize,
		Status:    status,
	}
}

func toAvailability(s domain.AvailabilityStatus) Availability {
	return Availability{State: string(s.State), Reason: s.Reason}
}

func toCapabilitiesResp(report usecases.CapabilityReport) CapabilitiesResp {
	resp := CapabilitiesResp{
		Capabilities: []CapabilityStatus{},
		Translator:   []TranslatorSupport{},
	}
	for _, c := range report.Capabilities {
		resp.Capabilities = append(resp.Capabilities, CapabilityStatus{
			Name:         string(c.Name),
			Tier:         string(c.Tier),
			Availability: toAvailability(c.Status),
		})
	}
	for _, ts := range report.Translator {
		resp.Translator = append(resp.Translator, TranslatorSupport{
			Language:     ts.Language,
			Name:         ts.Name,
			Availability: toAvailability(ts.Status),
		})
	}
	return resp
}

func toSavedSummary(r domain.SavedRecord) SavedSummary {
	return SavedSummary{URL: r.URL, Summary: r.Summary, Date: r.Date}
}

func toStructuredSummary(s domain.StructuredSummary) StructuredSummary {
	keyPoints := s.KeyPoints
	if keyPoints == nil {
		keyPoints = []string{}
	}
	return StructuredSummary{
		Title:       s.Title,
		Summary:     s.Summary,
		KeyPoints:   keyPoints,
		Sentiment:   s.Sentiment,
		Category:    s.Category,
		ReadingTime: s.ReadingTime,
		ActionItems: s.ActionItems,
	}
}

func toPageContext(p PageContext) domain.PageContext {
	pc := domain.PageContext{Title: p.Title, Meta: p.Meta}
	for _, h := range p.Headings {
		pc.Headings = append(pc.Headings, domain.PageHeading{Level: h.Level, Text: h.Text})
	}
	for _, img := range p.Images {
		pc.Images = append(pc.Images, domain.PageImage{Src: img.Src, Alt: img.Alt, Title: img.Title})
	}
	return pc
}

func toMenuItems(items []domain.MenuItem) MenuItemsResp {
	resp := MenuItemsResp{Items: []MenuItem{}}
	for _, item := range items {
		resp.Items = append(resp.Items, MenuItem{ID: string(item.ID), Title: item.Title, Contexts: item.Contexts})
	}
	return resp
}

func toMenuActionResp(o domain.RouteOutcome) MenuActionResp {
	resp := MenuActionResp{
		State:       string(o.State),
		Operation:   string(o.Operation),
		Message:     o.Message,
		IsError:     o.IsError,
		Transitions: []string{},
	}
	for _, s := range o.Transitions {
		resp.Transitions = append(resp.Transitions, string(s))
	}
	return resp
}
