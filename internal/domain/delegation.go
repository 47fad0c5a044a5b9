package domain

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// ExecutionContext is an isolated surface of the application. Contexts share no memory:
// they only talk through delegation envelopes.
type ExecutionContext string

const (
	ExecutionContext_Background ExecutionContext = "background"
	ExecutionContext_Popup      ExecutionContext = "popup"
	ExecutionContext_Page       ExecutionContext = "page"
)

// ParseExecutionContext validates a context name.
func ParseExecutionContext(s string) (ExecutionContext, error) {
	switch ExecutionContext(s) {
	case ExecutionContext_Background, ExecutionContext_Popup, ExecutionContext_Page:
		return ExecutionContext(s), nil
	}
	return "", NewValidationErr("unknown execution context: " + s)
}

// OperationType names a delegated operation.
type OperationType string

const (
	OperationType_OpenComposeOverlay OperationType = "open-compose-overlay"
	OperationType_ProofreadSelection OperationType = "proofread-selection"
)

// ProofreadSelectionPayload is the payload of a proofread-selection envelope.
type ProofreadSelectionPayload struct {
	Text  string `json:"text"`
	TabID int    `json:"tabId"`
}

// OpenComposeOverlayPayload is the payload of an open-compose-overlay message.
type OpenComposeOverlayPayload struct {
	Mode string `json:"mode"`
}

// DelegationEnvelope is one delegated request travelling between contexts.
type DelegationEnvelope struct {
	CorrelationID uuid.UUID        `json:"correlationId"`
	OperationType OperationType    `json:"type"`
	Payload       json.RawMessage  `json:"payload"`
	Origin        ExecutionContext `json:"originContext"`
	Target        ExecutionContext `json:"targetContext"`
}

// DelegationAck is the correlated response of the target context.
type DelegationAck struct {
	CorrelationID uuid.UUID       `json:"correlationId"`
	OK            bool            `json:"ok"`
	Result        json.RawMessage `json:"result,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// ErrTargetNotReady is returned by transports when no listener is attached to the target
// context yet. It is a delivery failure and is retried.
var ErrTargetNotReady = errors.New("target context is not listening")

// ErrNoAcknowledgement is returned by transports when the envelope was sent but no
// correlated acknowledgment arrived in time. The target may still run the operation, so
// the envelope is not sent again.
var ErrNoAcknowledgement = errors.New("no acknowledgement received")

// MessageTransport delivers an envelope to its target context and waits for the ack.
type MessageTransport interface {
	Deliver(ctx context.Context, env DelegationEnvelope) (DelegationAck, error)
}

// DelegationHandler runs a delegated operation in the target context.
type DelegationHandler func(ctx context.Context, env DelegationEnvelope) DelegationAck

// DelegationInbox attaches a handler to the envelopes addressed to an execution context.
// Listen blocks until ctx is done.
type DelegationInbox interface {
	Listen(ctx context.Context, target ExecutionContext, handler DelegationHandler) error
}

// AckOK builds a successful acknowledgment.
func AckOK(env DelegationEnvelope, result any) DelegationAck {
	ack := DelegationAck{CorrelationID: env.CorrelationID, OK: true}
	if result != nil {
		if b, err := json.Marshal(result); err == nil {
			ack.Result = b
		}
	}
	return ack
}

// AckError builds a failed acknowledgment.
func AckError(env DelegationEnvelope, err error) DelegationAck {
	msg := "delegated operation failed"
	if err != nil {
		msg = err.Error()
	}
	return DelegationAck{CorrelationID: env.CorrelationID, OK: false, Error: msg}
}
