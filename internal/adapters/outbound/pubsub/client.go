package pubsub

import (
	"context"
	"fmt"
	"log"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// TransportName is the DELEGATION_TRANSPORT value selecting Pub/Sub.
const TransportName = "pubsub"

// InitClient creates the Pub/Sub client and registers the delegation transport and inbox
// when DELEGATION_TRANSPORT is "pubsub". The acknowledgment receiver runs until Close.
type InitClient struct {
	Logger           *log.Logger   `resolve:""`
	Transport        string        `config:"DELEGATION_TRANSPORT" default:"local"`
	ProjectID        string        `config:"PUBSUB_PROJECT_ID" default:"smartread"`
	TopicPrefix      string        `config:"DELEGATION_TOPIC_PREFIX" default:"smartread-delegation"`
	ExecutionContext string        `config:"EXECUTION_CONTEXT" default:"background"`
	AckTimeout       time.Duration `config:"DELEGATION_ACK_TIMEOUT" default:"30s"`
	SeenEnvelopes    int           `config:"DELEGATION_SEEN_ENVELOPES" default:"1024"`
	client           *pubsubV2.Client
	cancel           context.CancelFunc
	done             chan struct{}
}

// Initialize registers the Pub/Sub client, transport and inbox.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.Transport != TransportName {
		return ctx, nil
	}

	origin, err := domain.ParseExecutionContext(i.ExecutionContext)
	if err != nil {
		return ctx, err
	}

	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	transport := NewTransport(i.client, i.TopicPrefix, origin, i.AckTimeout, i.Logger)
	inbox, err := NewInbox(i.client, i.TopicPrefix, i.SeenEnvelopes, i.Logger)
	if err != nil {
		return ctx, err
	}

	receiveCtx, cancel := context.WithCancel(context.Background())
	i.cancel = cancel
	i.done = make(chan struct{})
	go func() {
		defer close(i.done)
		if err := transport.ReceiveAcks(receiveCtx); err != nil {
			i.Logger.Printf("InitClient: acknowledgment receiver stopped: %v", err)
		}
	}()

	depend.Register(i.client)
	depend.Register[domain.MessageTransport](transport)
	depend.Register[domain.DelegationInbox](inbox)

	return ctx, nil
}

// Close stops the acknowledgment receiver and closes the client.
func (i *InitClient) Close() {
	if i.cancel != nil {
		i.cancel()
		<-i.done
	}
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient:failed to close pubsub client: %v", err)
	}
}
