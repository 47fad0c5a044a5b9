package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSeenEnvelopes is the number of correlation ids an Inbox remembers.
const DefaultSeenEnvelopes = 1024

// handledEnvelope tracks one envelope run by the inbox. ack is set before done is closed.
type handledEnvelope struct {
	done chan struct{}
	ack  domain.DelegationAck
}

// Inbox implements domain.DelegationInbox over Pub/Sub. Pub/Sub delivers at least once, so
// the inbox remembers the envelopes it already handled and replays their acknowledgment
// instead of running the operation twice.
type Inbox struct {
	client *pubsubV2.Client
	prefix string
	logger *log.Logger
	seen   *lru.Cache[uuid.UUID, *handledEnvelope]
}

// NewInbox creates a new Inbox remembering the last seenSize envelopes.
func NewInbox(client *pubsubV2.Client, prefix string, seenSize int, logger *log.Logger) (*Inbox, error) {
	if seenSize <= 0 {
		seenSize = DefaultSeenEnvelopes
	}
	seen, err := lru.New[uuid.UUID, *handledEnvelope](seenSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create seen envelopes cache: %w", err)
	}
	return &Inbox{client: client, prefix: prefix, logger: logger, seen: seen}, nil
}

// Listen receives the envelopes addressed to target, runs handler on each one and
// publishes the acknowledgment to the origin ack topic. Envelopes whose ack cannot be
// published are nacked so they are redelivered; the redelivery replays the stored ack.
func (in *Inbox) Listen(ctx context.Context, target domain.ExecutionContext, handler domain.DelegationHandler) error {
	return in.client.Subscriber(EnvelopeSubscription(in.prefix, target)).Receive(ctx, func(msgCtx context.Context, msg *pubsubV2.Message) {
		var env domain.DelegationEnvelope
		if err := json.Unmarshal(msg.Data, &env); err != nil {
			in.logger.Printf("Inbox: dropping malformed envelope: %v", err)
			msg.Ack()
			return
		}

		entry, first := in.track(env.CorrelationID)
		if first {
			entry.ack = handler(msgCtx, env)
			close(entry.done)
		} else {
			select {
			case <-entry.done:
				in.logger.Printf("Inbox: replaying acknowledgment of %s %s", env.OperationType, env.CorrelationID)
			default:
				in.logger.Printf("Inbox: dropping duplicate of running %s %s", env.OperationType, env.CorrelationID)
				msg.Ack()
				return
			}
		}

		if err := in.publishAck(msgCtx, env, entry.ack); err != nil {
			in.logger.Printf("Inbox: %v", err)
			msg.Nack()
			return
		}
		msg.Ack()
	})
}

// track returns the entry of id and whether this call created it.
func (in *Inbox) track(id uuid.UUID) (*handledEnvelope, bool) {
	entry := &handledEnvelope{done: make(chan struct{})}
	previous, found, _ := in.seen.PeekOrAdd(id, entry)
	if found {
		return previous, false
	}
	return entry, true
}

func (in *Inbox) publishAck(ctx context.Context, env domain.DelegationEnvelope, ack domain.DelegationAck) error {
	data, err := json.Marshal(ack)
	if err != nil {
		return fmt.Errorf("failed to marshal acknowledgment: %w", err)
	}

	result := in.client.Publisher(AckTopic(in.prefix, env.Origin)).Publish(ctx, &pubsubV2.Message{
		Data:       data,
		Attributes: map[string]string{"correlation_id": env.CorrelationID.String()},
	})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("failed to publish acknowledgment: %w", err)
	}
	return nil
}
