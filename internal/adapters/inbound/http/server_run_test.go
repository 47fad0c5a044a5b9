package http

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSmartReadServer_Run(t *testing.T) {
	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := SmartReadServer{
		Port:   12346,
		Logger: log.New(io.Discard, "", 0),
	}

	shutdownCh := make(chan error, 1)
	go func() {
		shutdownCh <- server.Run(cancelCtx)
	}()

	var readyErr error
	for range 50 {
		if readyErr = server.IsReady(cancelCtx); readyErr == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.NoError(t, readyErr)

	cancel()

	select {
	case err := <-shutdownCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		assert.Fail(t, "server did not shut down in time")
	}
}
