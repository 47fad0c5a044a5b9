package workers

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-smartread/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont-smartread/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDelegationListener_Run(t *testing.T) {
	env := domain.DelegationEnvelope{
		CorrelationID: uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		OperationType: domain.OperationType_ProofreadSelection,
		Origin:        domain.ExecutionContext_Background,
		Target:        domain.ExecutionContext_Popup,
	}
	ack := domain.DelegationAck{CorrelationID: env.CorrelationID, OK: true}

	inbox := domain_mocks.NewMockDelegationInbox(t)
	handler := usecases.NewMockHandleDelegatedRequest(t)
	handler.EXPECT().Execute(mock.Anything, env).Return(ack).Once()

	acks := make(chan domain.DelegationAck, 1)
	inbox.EXPECT().Listen(mock.Anything, domain.ExecutionContext_Popup, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.ExecutionContext, h domain.DelegationHandler) error {
			acks <- h(ctx, env)
			<-ctx.Done()
			return nil
		}).Once()

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := DelegationListener{
		Logger:   log.New(io.Discard, "", 0),
		Inbox:    inbox,
		Handler:  handler,
		Contexts: "popup",
	}

	done := make(chan error, 1)
	go func() {
		done <- l.Run(cancelCtx)
	}()

	select {
	case got := <-acks:
		assert.Equal(t, ack, got)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for the delegated request")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("listener did not stop")
	}
}

func TestDelegationListener_Run_ListenError(t *testing.T) {
	inbox := domain_mocks.NewMockDelegationInbox(t)
	inbox.EXPECT().Listen(mock.Anything, domain.ExecutionContext_Popup, mock.Anything).
		Return(errors.New("subscription not found")).Once()
	inbox.EXPECT().Listen(mock.Anything, domain.ExecutionContext_Page, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ domain.ExecutionContext, _ domain.DelegationHandler) error {
			<-ctx.Done()
			return nil
		}).Once()

	l := DelegationListener{
		Logger:   log.New(io.Discard, "", 0),
		Inbox:    inbox,
		Handler:  usecases.NewMockHandleDelegatedRequest(t),
		Contexts: "popup, page",
	}

	err := l.Run(context.Background())
	assert.EqualError(t, err, "subscription not found")
}

func TestDelegationListener_Run_InvalidContext(t *testing.T) {
	l := DelegationListener{
		Logger:   log.New(io.Discard, "", 0),
		Inbox:    domain_mocks.NewMockDelegationInbox(t),
		Handler:  usecases.NewMockHandleDelegatedRequest(t),
		Contexts: "popup,sidebar",
	}

	err := l.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sidebar")
}
