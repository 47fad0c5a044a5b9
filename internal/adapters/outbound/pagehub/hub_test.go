package pagehub

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*Hub, string) {
	hub := NewHub(log.New(io.Discard, "", 0), time.Second)
	mux := http.NewServeMux()
	mux.HandleFunc("/ws/bridge", hub.HandleBridge)
	mux.HandleFunc("/ws/page", hub.HandleTab)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return hub, "ws" + strings.TrimPrefix(server.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		ws.Close() //nolint:errcheck
	})
	return ws
}

func waitConnected(t *testing.T, hub *Hub, check func() bool) {
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return check()
	}, time.Second, 5*time.Millisecond)
}

func TestHub_BridgeCommands(t *testing.T) {
	tab := domain.PageTab{ID: 42, URL: "https://example.com"}

	tests := map[string]struct {
		call     func(ctx context.Context, hub *Hub) error
		expected BridgeCommand
	}{
		"show-message": {
			call: func(ctx context.Context, hub *Hub) error {
				return hub.ShowMessage(ctx, tab, "Text proofread successfully!", false)
			},
			expected: BridgeCommand{Type: BridgeCommand_ShowMessage, TabID: 42, Message: "Text proofread successfully!"},
		},
		"show-error-message": {
			call: func(ctx context.Context, hub *Hub) error {
				return hub.ShowMessage(ctx, tab, "No text selected for language detection.", true)
			},
			expected: BridgeCommand{Type: BridgeCommand_ShowMessage, TabID: 42, Message: "No text selected for language detection.", IsError: true},
		},
		"replace-selection": {
			call: func(ctx context.Context, hub *Hub) error {
				return hub.ReplaceSelection(ctx, tab, "the text")
			},
			expected: BridgeCommand{Type: BridgeCommand_ReplaceSelection, TabID: 42, Text: "the text"},
		},
		"open-popup": {
			call: func(ctx context.Context, hub *Hub) error {
				return hub.OpenPopup(ctx)
			},
			expected: BridgeCommand{Type: BridgeCommand_OpenPopup},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			hub, baseURL := newTestHub(t)
			bridge := dial(t, baseURL+"/ws/bridge")
			waitConnected(t, hub, func() bool { return hub.bridge != nil })

			require.NoError(t, tt.call(context.Background(), hub))

			var got BridgeCommand
			require.NoError(t, bridge.SetReadDeadline(time.Now().Add(2*time.Second)))
			require.NoError(t, bridge.ReadJSON(&got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHub_WithoutBridge(t *testing.T) {
	hub, _ := newTestHub(t)
	err := hub.ShowMessage(context.Background(), domain.PageTab{ID: 1}, "hello", false)
	assert.ErrorIs(t, err, domain.ErrPageNotConnected)
}

func TestHub_SendToContent(t *testing.T) {
	tests := map[string]struct {
		connectTab  bool
		expectedErr error
	}{
		"tab-connected": {
			connectTab: true,
		},
		"tab-not-connected": {
			connectTab:  false,
			expectedErr: domain.ErrPageNotConnected,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			hub, baseURL := newTestHub(t)
			var page *websocket.Conn
			if tt.connectTab {
				page = dial(t, baseURL+"/ws/page?tabId=7")
				waitConnected(t, hub, func() bool { return hub.tabs[7] != nil })
			}

			msg := domain.PageMessage{Type: domain.OperationType_OpenComposeOverlay, Mode: "summarize"}
			err := hub.SendToContent(context.Background(), domain.PageTab{ID: 7}, msg)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)

			var got domain.PageMessage
			require.NoError(t, page.SetReadDeadline(time.Now().Add(2*time.Second)))
			require.NoError(t, page.ReadJSON(&got))
			assert.Equal(t, msg, got)
		})
	}
}

func TestHub_InjectContentScript(t *testing.T) {
	hub, baseURL := newTestHub(t)
	bridge := dial(t, baseURL+"/ws/bridge")
	waitConnected(t, hub, func() bool { return hub.bridge != nil })

	// The bridge injects the script, which connects back for the tab.
	go func() {
		var cmd BridgeCommand
		if err := bridge.ReadJSON(&cmd); err != nil {
			return
		}
		if cmd.Type != BridgeCommand_InjectScript {
			return
		}
		ws, _, err := websocket.DefaultDialer.Dial(baseURL+"/ws/page?tabId="+strconv.Itoa(cmd.TabID), nil)
		if err != nil {
			return
		}
		t.Cleanup(func() {
			ws.Close() //nolint:errcheck
		})
	}()

	err := hub.InjectContentScript(context.Background(), domain.PageTab{ID: 9}, domain.ComposeOverlayScript)
	require.NoError(t, err)

	err = hub.SendToContent(context.Background(), domain.PageTab{ID: 9}, domain.PageMessage{Type: domain.OperationType_OpenComposeOverlay})
	assert.NoError(t, err)
}

func TestHub_InjectContentScript_Timeout(t *testing.T) {
	hub, baseURL := newTestHub(t)
	hub.injectTimeout = 50 * time.Millisecond
	dial(t, baseURL+"/ws/bridge")
	waitConnected(t, hub, func() bool { return hub.bridge != nil })

	err := hub.InjectContentScript(context.Background(), domain.PageTab{ID: 3}, domain.ComposeOverlayScript)
	assert.ErrorIs(t, err, domain.ErrPageNotConnected)

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	assert.Empty(t, hub.waiters)
}

func TestHub_InjectContentScript_ReleasesWaiter(t *testing.T) {
	tests := map[string]struct {
		withBridge bool
		cancelCtx  bool
		expectErr  error
	}{
		"bridge-missing": {
			withBridge: false,
			expectErr:  domain.ErrPageNotConnected,
		},
		"context-canceled": {
			withBridge: true,
			cancelCtx:  true,
			expectErr:  context.Canceled,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			hub, baseURL := newTestHub(t)
			if tt.withBridge {
				dial(t, baseURL+"/ws/bridge")
				waitConnected(t, hub, func() bool { return hub.bridge != nil })
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancelCtx {
				time.AfterFunc(20*time.Millisecond, cancel)
			}

			err := hub.InjectContentScript(ctx, domain.PageTab{ID: 5}, domain.ComposeOverlayScript)
			assert.ErrorIs(t, err, tt.expectErr)

			hub.mu.RLock()
			defer hub.mu.RUnlock()
			assert.Empty(t, hub.waiters)
		})
	}
}

func TestHub_HandleTab_InvalidTabID(t *testing.T) {
	hub, _ := newTestHub(t)
	rec := httptest.NewRecorder()
	hub.HandleTab(rec, httptest.NewRequest(http.MethodGet, "/ws/page?tabId=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
