// Package localbus delivers delegation envelopes between execution contexts hosted in the
// same process.
package localbus

import (
	"context"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TransportName is the DELEGATION_TRANSPORT value selecting the bus.
const TransportName = "local"

// Bus is an in-process MessageTransport and DelegationInbox. Each execution context has at
// most one listener.
type Bus struct {
	mu       sync.RWMutex
	handlers map[domain.ExecutionContext]domain.DelegationHandler
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{handlers: map[domain.ExecutionContext]domain.DelegationHandler{}}
}

// Deliver implements domain.MessageTransport. It fails with domain.ErrTargetNotReady when
// nothing listens on the target context.
func (b *Bus) Deliver(ctx context.Context, env domain.DelegationEnvelope) (domain.DelegationAck, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("operation", string(env.OperationType)),
		attribute.String("target", string(env.Target)),
		attribute.String("correlation_id", env.CorrelationID.String()),
	))
	defer span.End()

	b.mu.RLock()
	handler, ok := b.handlers[env.Target]
	b.mu.RUnlock()
	if !ok {
		telemetry.RecordErrorAndStatus(span, domain.ErrTargetNotReady)
		return domain.DelegationAck{}, domain.ErrTargetNotReady
	}

	if err := spanCtx.Err(); err != nil {
		return domain.DelegationAck{}, err
	}
	return handler(spanCtx, env), nil
}

// Listen implements domain.DelegationInbox. A second listener replaces the first one.
func (b *Bus) Listen(ctx context.Context, target domain.ExecutionContext, handler domain.DelegationHandler) error {
	b.mu.Lock()
	b.handlers[target] = handler
	b.mu.Unlock()

	<-ctx.Done()

	b.mu.Lock()
	delete(b.handlers, target)
	b.mu.Unlock()
	return nil
}

// InitBus registers the Bus as transport and inbox when DELEGATION_TRANSPORT is "local".
type InitBus struct {
	Logger    *log.Logger `resolve:""`
	Transport string      `config:"DELEGATION_TRANSPORT" default:"local"`
}

// Initialize registers the Bus.
func (i InitBus) Initialize(ctx context.Context) (context.Context, error) {
	if i.Transport != TransportName {
		return ctx, nil
	}
	bus := NewBus()
	depend.Register[domain.MessageTransport](bus)
	depend.Register[domain.DelegationInbox](bus)
	i.Logger.Println("InitBus: in-process delegation transport registered")
	return ctx, nil
}
