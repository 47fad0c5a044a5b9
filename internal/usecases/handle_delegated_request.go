package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// HandleDelegatedRequest defines the interface for the HandleDelegatedRequest use case.
type HandleDelegatedRequest interface {
	// Execute runs a delegated operation in this context. Failures are reported in the
	// acknowledgment, never as errors.
	Execute(ctx context.Context, env domain.DelegationEnvelope) domain.DelegationAck
}

// HandleDelegatedRequestImpl is the implementation of the HandleDelegatedRequest use case.
type HandleDelegatedRequestImpl struct {
	proofreader ProofreadText
	page        domain.PageSurface
	logger      *log.Logger
}

// NewHandleDelegatedRequestImpl creates a new instance of HandleDelegatedRequestImpl.
func NewHandleDelegatedRequestImpl(p ProofreadText, page domain.PageSurface, l *log.Logger) HandleDelegatedRequestImpl {
	return HandleDelegatedRequestImpl{proofreader: p, page: page, logger: l}
}

// Execute implements HandleDelegatedRequest.
func (h HandleDelegatedRequestImpl) Execute(ctx context.Context, env domain.DelegationEnvelope) (ack domain.DelegationAck) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("operation", string(env.OperationType)),
		attribute.String("correlation_id", env.CorrelationID.String()),
		attribute.String("origin", string(env.Origin)),
	))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			h.logger.Printf("HandleDelegatedRequest: %s panicked: %v", env.OperationType, r)
			ack = domain.AckError(env, fmt.Errorf("%v", r))
		}
	}()

	var err error
	switch env.OperationType {
	case domain.OperationType_ProofreadSelection:
		err = h.proofreadSelection(spanCtx, env.Payload)
	case domain.OperationType_OpenComposeOverlay:
		err = h.openComposeOverlay(spanCtx, env.Payload)
	default:
		err = domain.NewValidationErr(fmt.Sprintf("unsupported operation: %s", env.OperationType))
	}

	if telemetry.RecordErrorAndStatus(span, err) {
		h.logger.Printf("HandleDelegatedRequest: %s failed: %v", env.OperationType, err)
		return domain.AckError(env, err)
	}
	return domain.AckOK(env, nil)
}

func (h HandleDelegatedRequestImpl) proofreadSelection(ctx context.Context, raw json.RawMessage) error {
	var payload domain.ProofreadSelectionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.NewValidationErr("invalid proofread-selection payload: " + err.Error())
	}

	res, err := h.proofreader.Execute(ctx, payload.Text, nil)
	if err != nil {
		return err
	}
	if res.Kind != domain.ResultKind_Success {
		return errors.New(res.Reason)
	}

	return h.page.ReplaceSelection(ctx, domain.PageTab{ID: payload.TabID}, res.Text())
}

func (h HandleDelegatedRequestImpl) openComposeOverlay(ctx context.Context, raw json.RawMessage) error {
	var payload struct {
		domain.OpenComposeOverlayPayload
		TabID int `json:"tabId"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.NewValidationErr("invalid open-compose-overlay payload: " + err.Error())
	}
	return h.page.SendToContent(ctx, domain.PageTab{ID: payload.TabID}, domain.PageMessage{
		Type: domain.OperationType_OpenComposeOverlay,
		Mode: payload.Mode,
	})
}

// InitHandleDelegatedRequest initializes the HandleDelegatedRequest use case.
type InitHandleDelegatedRequest struct {
	Proofreader ProofreadText      `resolve:""`
	Page        domain.PageSurface `resolve:""`
	Logger      *log.Logger        `resolve:""`
}

// Initialize registers the HandleDelegatedRequest use case implementation.
func (i InitHandleDelegatedRequest) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[HandleDelegatedRequest](NewHandleDelegatedRequestImpl(i.Proofreader, i.Page, i.Logger))
	return ctx, nil
}
