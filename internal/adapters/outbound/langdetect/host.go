// Package langdetect serves the language detector capability with an in-process
// trigram detector.
package langdetect

import (
	"context"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Host is the language detector host. It has no model to download.
type Host struct {
	enabled bool
}

// NewHost creates a new Host. A disabled host reports itself unavailable.
func NewHost(enabled bool) Host {
	return Host{enabled: enabled}
}

// Availability implements domain.CapabilityHost.
func (h Host) Availability(_ context.Context, _ domain.CapabilityDescriptor) (string, error) {
	if !h.enabled {
		return "unavailable", nil
	}
	return "available", nil
}

// Create implements domain.CapabilityHost.
func (h Host) Create(_ context.Context, _ domain.CapabilityDescriptor, observer domain.ProgressObserver) (domain.Session, error) {
	if observer != nil {
		observer.OnProgress(1)
	}
	return Session{}, nil
}

// Session detects the language of its input.
type Session struct{}

// Invoke implements domain.Session. The output holds a single candidate.
func (Session) Invoke(ctx context.Context, input domain.CapabilityInput) (domain.CapabilityOutput, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	info := whatlanggo.Detect(input.Text)
	code := info.Lang.Iso6391()
	if code == "" {
		code = info.Lang.Iso6393()
	}
	code = strings.ToLower(code)
	span.SetAttributes(
		attribute.String("language", code),
		attribute.Float64("confidence", info.Confidence),
	)
	if code == "" {
		return domain.CapabilityOutput{}, nil
	}

	return domain.CapabilityOutput{Detections: []domain.LanguageDetection{
		{Language: code, Confidence: info.Confidence},
	}}, nil
}
