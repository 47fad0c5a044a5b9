package usecases

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CapabilityProbe reports whether a capability can be used for the given parameters.
type CapabilityProbe interface {
	// Probe never fails: query errors are folded into an Error status.
	Probe(ctx context.Context, d domain.CapabilityDescriptor) domain.AvailabilityStatus
}

// CapabilityProbeImpl is the implementation of the CapabilityProbe use case.
type CapabilityProbeImpl struct {
	registry domain.CapabilityRegistry
	logger   *log.Logger
}

// NewCapabilityProbeImpl creates a new instance of CapabilityProbeImpl.
func NewCapabilityProbeImpl(r domain.CapabilityRegistry, l *log.Logger) CapabilityProbeImpl {
	return CapabilityProbeImpl{
		registry: r,
		logger:   l,
	}
}

// Probe queries the host registered for the descriptor's capability and tier.
func (p CapabilityProbeImpl) Probe(ctx context.Context, d domain.CapabilityDescriptor) (status domain.AvailabilityStatus) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("capability", string(d.Name)),
		attribute.String("tier", string(d.Tier)),
	))
	defer func() {
		span.SetAttributes(attribute.String("availability", string(status.State)))
		span.End()
	}()

	if d.IsSameLanguageTranslation() {
		return domain.Available()
	}
	if d.Tier == domain.Tier_Demo {
		return domain.Available()
	}

	host, ok := p.registry.Lookup(d.Name, d.Tier)
	if !ok {
		return domain.Unavailable(fmt.Sprintf("%s API not supported", d.Name))
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Printf("CapabilityProbe: %s availability panicked: %v", d.Name, r)
			status = domain.AvailabilityError(fmt.Sprintf("%v", r))
		}
	}()

	raw, err := host.Availability(spanCtx, d)
	if err != nil {
		p.logger.Printf("CapabilityProbe: error checking %s availability: %v", d.Name, err)
		return domain.AvailabilityError(err.Error())
	}

	return domain.ParseAvailability(raw)
}

// InitCapabilityProbe initializes the CapabilityProbe use case.
type InitCapabilityProbe struct {
	Registry domain.CapabilityRegistry `resolve:""`
	Logger   *log.Logger               `resolve:""`
}

// Initialize registers the CapabilityProbe use case implementation.
func (i InitCapabilityProbe) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CapabilityProbe](NewCapabilityProbeImpl(i.Registry, i.Logger))
	return ctx, nil
}
