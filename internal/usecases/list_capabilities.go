package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// CapabilityStatus is the availability of one capability tier.
type CapabilityStatus struct {
	Name   domain.CapabilityName
	Tier   domain.Tier
	Status domain.AvailabilityStatus
}

// TranslatorSupport is the availability of the translator for one target language.
type TranslatorSupport struct {
	Language string
	Name     string
	Status   domain.AvailabilityStatus
}

// CapabilityReport lists what the UI can offer.
type CapabilityReport struct {
	Capabilities []CapabilityStatus
	Translator   []TranslatorSupport
}

// ListCapabilities defines the interface for the ListCapabilities use case.
type ListCapabilities interface {
	Query(ctx context.Context) (CapabilityReport, error)
}

// ListCapabilitiesImpl is the implementation of the ListCapabilities use case.
type ListCapabilitiesImpl struct {
	probe             CapabilityProbe
	translatorTargets []string
}

// NewListCapabilitiesImpl creates a new instance of ListCapabilitiesImpl.
func NewListCapabilitiesImpl(p CapabilityProbe, translatorTargets []string) ListCapabilitiesImpl {
	return ListCapabilitiesImpl{probe: p, translatorTargets: translatorTargets}
}

// Query probes every capability at every tier, and the translator for each target language
// from English. English itself is always supported.
func (lc ListCapabilitiesImpl) Query(ctx context.Context) (CapabilityReport, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	report := CapabilityReport{}
	for _, name := range domain.AllCapabilityNames {
		for _, tier := range []domain.Tier{domain.Tier_Specialized, domain.Tier_GeneralPurpose} {
			d := domain.NewCapabilityDescriptor(name, tier, nil)
			report.Capabilities = append(report.Capabilities, CapabilityStatus{
				Name:   name,
				Tier:   tier,
				Status: lc.probe.Probe(spanCtx, d),
			})
		}
	}

	for _, lang := range lc.translatorTargets {
		if ctx.Err() != nil {
			telemetry.RecordErrorAndStatus(span, ctx.Err())
			return CapabilityReport{}, ctx.Err()
		}
		d := TranslatorDescriptor(DefaultSourceLanguage, lang)
		report.Translator = append(report.Translator, TranslatorSupport{
			Language: lang,
			Name:     domain.LanguageName(lang),
			Status:   lc.probe.Probe(spanCtx, d),
		})
	}

	return report, nil
}

// ParseLanguageList splits a comma separated list of language codes.
func ParseLanguageList(raw string) []string {
	var out []string
	for _, l := range strings.Split(raw, ",") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// InitListCapabilities initializes the ListCapabilities use case.
type InitListCapabilities struct {
	Probe               CapabilityProbe `resolve:""`
	TranslatorLanguages string          `config:"TRANSLATOR_LANGUAGES" default:"en,es,fr,de,hi,ja,pt,zh"`
}

// Initialize registers the ListCapabilities use case implementation.
func (i InitListCapabilities) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListCapabilities](NewListCapabilitiesImpl(i.Probe, ParseLanguageList(i.TranslatorLanguages)))
	return ctx, nil
}
