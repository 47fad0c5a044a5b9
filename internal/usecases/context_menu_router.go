package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProofreadErrorMessage is shown when proofreading a selection failed for any reason.
const ProofreadErrorMessage = "Error proofreading text. Please try again."

// ContextMenuRouter maps user actions to operations.
type ContextMenuRouter interface {
	// Route runs the event to a terminal state. The outcome is always shown to the user.
	Route(ctx context.Context, event domain.UserEvent) domain.RouteOutcome
	// MenuItems returns the context-menu entries offered with the current capabilities.
	MenuItems(ctx context.Context) []domain.MenuItem
}

// ContextMenuRouterImpl is the implementation of the ContextMenuRouter use case.
type ContextMenuRouterImpl struct {
	detector    DetectLanguage
	proofreader ProofreadText
	probe       CapabilityProbe
	registry    domain.CapabilityRegistry
	delegate    CrossContextDelegate
	page        domain.PageSurface
	logger      *log.Logger
}

// NewContextMenuRouterImpl creates a new instance of ContextMenuRouterImpl.
func NewContextMenuRouterImpl(
	detector DetectLanguage,
	proofreader ProofreadText,
	probe CapabilityProbe,
	registry domain.CapabilityRegistry,
	delegate CrossContextDelegate,
	page domain.PageSurface,
	logger *log.Logger,
) ContextMenuRouterImpl {
	return ContextMenuRouterImpl{
		detector:    detector,
		proofreader: proofreader,
		probe:       probe,
		registry:    registry,
		delegate:    delegate,
		page:        page,
		logger:      logger,
	}
}

// routing tracks the states an event goes through.
type routing struct {
	outcome domain.RouteOutcome
}

func newRouting() *routing {
	return &routing{outcome: domain.RouteOutcome{
		State:       domain.RouterState_Idle,
		Transitions: []domain.RouterState{domain.RouterState_Idle},
	}}
}

func (r *routing) to(state domain.RouterState) {
	r.outcome.State = state
	r.outcome.Transitions = append(r.outcome.Transitions, state)
}

func (r *routing) dispatch(op domain.DispatchedOperation) {
	r.outcome.Operation = op
	r.to(domain.RouterState_Dispatched)
}

// Route implements ContextMenuRouter.
func (cr ContextMenuRouterImpl) Route(ctx context.Context, event domain.UserEvent) domain.RouteOutcome {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("action", string(event.Action)),
		attribute.Int("tab_id", event.Tab.ID),
	))
	defer span.End()

	r := newRouting()
	r.to(domain.RouterState_AwaitingSelection)

	switch {
	case event.Action.OpensComposeOverlay():
		cr.openComposeOverlay(spanCtx, r, event)
	case event.Action == domain.MenuAction_DetectLanguage:
		cr.detectLanguage(spanCtx, r, event)
	case event.Action == domain.MenuAction_ProofreadText:
		cr.proofread(spanCtx, r, event)
	default:
		cr.fail(spanCtx, r, event.Tab, fmt.Sprintf("Unsupported action: %s", event.Action))
	}

	span.SetAttributes(
		attribute.String("state", string(r.outcome.State)),
		attribute.String("operation", string(r.outcome.Operation)),
	)
	return r.outcome
}

func (cr ContextMenuRouterImpl) detectLanguage(ctx context.Context, r *routing, event domain.UserEvent) {
	if strings.TrimSpace(event.SelectionText) == "" {
		cr.fail(ctx, r, event.Tab, "No text selected for language detection.")
		return
	}
	if !domain.IsScriptableURL(event.Tab.URL) {
		cr.fail(ctx, r, event.Tab, unsupportedPageMessage(event.Tab))
		return
	}

	r.dispatch(domain.DispatchedOperation_DetectLanguage)
	detection, err := cr.detector.Execute(ctx, event.SelectionText)
	if err != nil {
		cr.fail(ctx, r, event.Tab, DetectionErrorMessage(err))
		return
	}
	cr.complete(ctx, r, event.Tab, FormatDetection(detection))
}

func (cr ContextMenuRouterImpl) proofread(ctx context.Context, r *routing, event domain.UserEvent) {
	if strings.TrimSpace(event.SelectionText) == "" {
		cr.fail(ctx, r, event.Tab, "No text selected for proofreading.")
		return
	}
	if !domain.IsScriptableURL(event.Tab.URL) {
		cr.fail(ctx, r, event.Tab, unsupportedPageMessage(event.Tab))
		return
	}

	r.dispatch(domain.DispatchedOperation_Proofread)

	var err error
	if cr.probe.Probe(ctx, ProofreaderDescriptor()).Usable() {
		err = cr.proofreadLocally(ctx, event)
	} else {
		err = cr.proofreadInPopup(ctx, event)
	}
	if err != nil {
		cr.logger.Printf("ContextMenuRouter: proofreading error: %v", err)
		cr.fail(ctx, r, event.Tab, ProofreadErrorMessage)
		return
	}

	cr.complete(ctx, r, event.Tab, "Text proofread successfully!")
}

func (cr ContextMenuRouterImpl) proofreadLocally(ctx context.Context, event domain.UserEvent) error {
	res, err := cr.proofreader.Execute(ctx, event.SelectionText, nil)
	if err != nil {
		return err
	}
	if res.Kind != domain.ResultKind_Success {
		return errors.New(res.Reason)
	}
	return cr.page.ReplaceSelection(ctx, event.Tab, res.Text())
}

// proofreadInPopup opens the popup and hands the selection over to it. The popup replaces
// the selection itself.
func (cr ContextMenuRouterImpl) proofreadInPopup(ctx context.Context, event domain.UserEvent) error {
	if err := cr.page.OpenPopup(ctx); err != nil {
		return fmt.Errorf("failed to open popup: %w", err)
	}
	_, err := cr.delegate.Delegate(ctx, domain.OperationType_ProofreadSelection, domain.ProofreadSelectionPayload{
		Text:  event.SelectionText,
		TabID: event.Tab.ID,
	}, domain.ExecutionContext_Popup, DelegateOptions{})
	return err
}

func (cr ContextMenuRouterImpl) openComposeOverlay(ctx context.Context, r *routing, event domain.UserEvent) {
	if !domain.IsScriptableURL(event.Tab.URL) {
		cr.fail(ctx, r, event.Tab, unsupportedPageMessage(event.Tab))
		return
	}

	r.dispatch(domain.DispatchedOperation_OpenComposeOverlay)
	msg := domain.PageMessage{Type: domain.OperationType_OpenComposeOverlay, Mode: string(event.Action)}

	err := cr.page.SendToContent(ctx, event.Tab, msg)
	if err != nil {
		// The overlay script is not loaded in the page yet.
		if injectErr := cr.page.InjectContentScript(ctx, event.Tab, domain.ComposeOverlayScript); injectErr != nil {
			err = injectErr
		} else {
			err = cr.page.SendToContent(ctx, event.Tab, msg)
		}
	}
	if err != nil {
		cr.logger.Printf("ContextMenuRouter: failed to reach content script: %v", err)
		cr.fail(ctx, r, event.Tab, "Failed to open the compose overlay on this page.")
		return
	}

	r.to(domain.RouterState_Completed)
}

func (cr ContextMenuRouterImpl) complete(ctx context.Context, r *routing, tab domain.PageTab, message string) {
	r.outcome.Message = message
	r.to(domain.RouterState_Completed)
	if err := cr.page.ShowMessage(ctx, tab, message, false); err != nil {
		cr.logger.Printf("ContextMenuRouter: failed to show message: %v", err)
	}
}

func (cr ContextMenuRouterImpl) fail(ctx context.Context, r *routing, tab domain.PageTab, message string) {
	r.outcome.Message = message
	r.outcome.IsError = true
	r.to(domain.RouterState_Failed)
	if err := cr.page.ShowMessage(ctx, tab, message, true); err != nil {
		cr.logger.Printf("ContextMenuRouter: failed to show message: %v", err)
	}
}

func unsupportedPageMessage(tab domain.PageTab) string {
	return fmt.Sprintf("SmartRead cannot run on this page: %s", tab.URL)
}

// MenuItems implements ContextMenuRouter. Proofread is only offered when a proofreader
// host is registered.
func (cr ContextMenuRouterImpl) MenuItems(ctx context.Context) []domain.MenuItem {
	_, span := telemetry.Start(ctx)
	defer span.End()

	selection := []string{"selection"}
	items := []domain.MenuItem{
		{ID: domain.MenuAction_DetectLanguage, Title: "Detect Language", Contexts: selection},
	}
	if _, ok := cr.registry.Lookup(domain.CapabilityName_Proofreader, domain.Tier_Specialized); ok {
		items = append(items, domain.MenuItem{
			ID: domain.MenuAction_ProofreadText, Title: "Proofread Text with SmartRead AI", Contexts: selection,
		})
	}
	return append(items,
		domain.MenuItem{ID: domain.MenuAction_SummarizeSelection, Title: "Summarize Selection", Contexts: selection},
		domain.MenuItem{ID: domain.MenuAction_RewriteSelection, Title: "Rewrite Selection", Contexts: selection},
	)
}

// InitContextMenuRouter initializes the ContextMenuRouter use case.
type InitContextMenuRouter struct {
	Detector    DetectLanguage            `resolve:""`
	Proofreader ProofreadText             `resolve:""`
	Probe       CapabilityProbe           `resolve:""`
	Registry    domain.CapabilityRegistry `resolve:""`
	Delegate    CrossContextDelegate      `resolve:""`
	Page        domain.PageSurface        `resolve:""`
	Logger      *log.Logger               `resolve:""`
}

// Initialize registers the ContextMenuRouter use case implementation.
func (i InitContextMenuRouter) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ContextMenuRouter](NewContextMenuRouterImpl(
		i.Detector, i.Proofreader, i.Probe, i.Registry, i.Delegate, i.Page, i.Logger,
	))
	return ctx, nil
}
