package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EnvelopeTopic returns the topic carrying envelopes addressed to target.
func EnvelopeTopic(prefix string, target domain.ExecutionContext) string {
	return prefix + "-" + string(target)
}

// EnvelopeSubscription returns the subscription the target context listens on.
func EnvelopeSubscription(prefix string, target domain.ExecutionContext) string {
	return EnvelopeTopic(prefix, target) + "-sub"
}

// AckTopic returns the topic carrying acknowledgments back to origin.
func AckTopic(prefix string, origin domain.ExecutionContext) string {
	return prefix + "-acks-" + string(origin)
}

// AckSubscription returns the subscription the origin context receives its acks on.
func AckSubscription(prefix string, origin domain.ExecutionContext) string {
	return AckTopic(prefix, origin) + "-sub"
}

// Transport implements domain.MessageTransport over Pub/Sub. Envelopes are published to
// the target topic; acknowledgments come back on the origin ack topic and are matched to
// the waiting delivery by correlation id.
type Transport struct {
	client     *pubsubV2.Client
	prefix     string
	origin     domain.ExecutionContext
	ackTimeout time.Duration
	logger     *log.Logger

	mu      sync.Mutex
	pending map[uuid.UUID]chan domain.DelegationAck
}

// NewTransport creates a new Transport.
func NewTransport(client *pubsubV2.Client, prefix string, origin domain.ExecutionContext, ackTimeout time.Duration, logger *log.Logger) *Transport {
	return &Transport{
		client:     client,
		prefix:     prefix,
		origin:     origin,
		ackTimeout: ackTimeout,
		logger:     logger,
		pending:    map[uuid.UUID]chan domain.DelegationAck{},
	}
}

// Deliver implements domain.MessageTransport. It returns domain.ErrNoAcknowledgement when
// the envelope was published but no ack arrived within the ack timeout.
func (t *Transport) Deliver(ctx context.Context, env domain.DelegationEnvelope) (domain.DelegationAck, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("operation", string(env.OperationType)),
			attribute.String("target", string(env.Target)),
			attribute.String("correlation_id", env.CorrelationID.String()),
		),
	)
	defer span.End()

	data, err := json.Marshal(env)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.DelegationAck{}, fmt.Errorf("failed to marshal envelope: %w", err)
	}

	ackCh := t.await(env.CorrelationID)
	defer t.forget(env.CorrelationID)

	result := t.client.Publisher(EnvelopeTopic(t.prefix, env.Target)).Publish(spanCtx, &pubsubV2.Message{
		Data: data,
		Attributes: map[string]string{
			"operation":      string(env.OperationType),
			"origin":         string(env.Origin),
			"correlation_id": env.CorrelationID.String(),
		},
	})
	if _, err := result.Get(spanCtx); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.DelegationAck{}, fmt.Errorf("failed to publish envelope: %w", err)
	}

	timer := time.NewTimer(t.ackTimeout)
	defer timer.Stop()

	select {
	case ack := <-ackCh:
		telemetry.RecordErrorAndStatus(span, nil)
		return ack, nil
	case <-timer.C:
		telemetry.RecordErrorAndStatus(span, domain.ErrNoAcknowledgement)
		return domain.DelegationAck{}, domain.ErrNoAcknowledgement
	case <-ctx.Done():
		return domain.DelegationAck{}, ctx.Err()
	}
}

// ReceiveAcks consumes the origin ack subscription until ctx is done.
func (t *Transport) ReceiveAcks(ctx context.Context) error {
	return t.client.Subscriber(AckSubscription(t.prefix, t.origin)).Receive(ctx, func(_ context.Context, msg *pubsubV2.Message) {
		var ack domain.DelegationAck
		if err := json.Unmarshal(msg.Data, &ack); err != nil {
			t.logger.Printf("Transport: dropping malformed acknowledgment: %v", err)
			msg.Ack()
			return
		}
		t.resolve(ack)
		msg.Ack()
	})
}

func (t *Transport) await(id uuid.UUID) chan domain.DelegationAck {
	ch := make(chan domain.DelegationAck, 1)
	t.mu.Lock()
	t.pending[id] = ch
	t.mu.Unlock()
	return ch
}

func (t *Transport) forget(id uuid.UUID) {
	t.mu.Lock()
	delete(t.pending, id)
	t.mu.Unlock()
}

// resolve hands an ack to the delivery waiting for it. Acks of deliveries that already
// gave up are dropped.
func (t *Transport) resolve(ack domain.DelegationAck) {
	t.mu.Lock()
	ch, ok := t.pending[ack.CorrelationID]
	t.mu.Unlock()
	if !ok {
		return
	}
	select {
	case ch <- ack:
	default:
	}
}
