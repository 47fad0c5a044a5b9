package workers

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// DelegationListener runs the requests delegated to the execution contexts this process hosts.
type DelegationListener struct {
	Logger   *log.Logger                     `resolve:""`
	Inbox    domain.DelegationInbox          `resolve:""`
	Handler  usecases.HandleDelegatedRequest `resolve:""`
	Contexts string                          `config:"DELEGATION_LISTEN_CONTEXTS" default:"popup"`
}

// Run listens on every configured context until ctx is done.
func (l DelegationListener) Run(ctx context.Context) error {
	targets, err := l.targets()
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, target := range targets {
		l.Logger.Printf("DelegationListener: listening on %s", target)
		g.Go(func() error {
			return l.Inbox.Listen(gCtx, target, l.traced(target))
		})
	}

	err = g.Wait()
	l.Logger.Println("DelegationListener: stopped")
	return err
}

// traced runs every received request under its own span.
func (l DelegationListener) traced(target domain.ExecutionContext) domain.DelegationHandler {
	return func(ctx context.Context, env domain.DelegationEnvelope) domain.DelegationAck {
		spanCtx, span := telemetry.StartNamed(ctx, "DelegationListener::"+string(env.OperationType), trace.WithAttributes(
			telemetry.OperationKey.String(string(env.OperationType)),
			telemetry.ExecutionContextKey.String(string(target)),
			telemetry.RequestIDKey.String(env.CorrelationID.String()),
		))
		defer span.End()

		ack := l.Handler.Execute(spanCtx, env)
		if !ack.OK {
			telemetry.RecordErrorAndStatus(span, errors.New(ack.Error))
		}
		return ack
	}
}

func (l DelegationListener) targets() ([]domain.ExecutionContext, error) {
	var targets []domain.ExecutionContext
	for _, raw := range strings.Split(l.Contexts, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		target, err := domain.ParseExecutionContext(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, nil
}
