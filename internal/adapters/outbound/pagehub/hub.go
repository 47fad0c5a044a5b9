// Package pagehub reaches the user's pages over WebSocket. The browser bridge holds one
// connection used for tab-level commands; each content script holds its own connection
// keyed by tab id.
package pagehub

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-smartread/internal/domain"
	"github.com/cleitonmarx/symbiont-smartread/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// BridgeCommandType is the type of a command sent to the browser bridge.
type BridgeCommandType string

const (
	BridgeCommand_ShowMessage      BridgeCommandType = "show-message"
	BridgeCommand_ReplaceSelection BridgeCommandType = "replace-selection"
	BridgeCommand_InjectScript     BridgeCommandType = "inject-script"
	BridgeCommand_OpenPopup        BridgeCommandType = "open-popup"
)

// BridgeCommand is a command executed by the browser bridge.
type BridgeCommand struct {
	Type    BridgeCommandType `json:"type"`
	TabID   int               `json:"tabId,omitempty"`
	Message string            `json:"message,omitempty"`
	IsError bool              `json:"isError,omitempty"`
	Text    string            `json:"text,omitempty"`
	Script  string            `json:"script,omitempty"`
}

// conn is a single WebSocket connection. Writes are serialized.
type conn struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
}

func (c *conn) send(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteJSON(v)
}

func (c *conn) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// Hub implements domain.PageSurface.
type Hub struct {
	upgrader      websocket.Upgrader
	logger        *log.Logger
	injectTimeout time.Duration

	mu      sync.RWMutex
	bridge  *conn
	tabs    map[int]*conn
	waiters map[int][]chan struct{}
}

// NewHub creates a new Hub. InjectContentScript waits up to injectTimeout for the injected
// script to connect.
func NewHub(logger *log.Logger, injectTimeout time.Duration) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Pages connect from arbitrary origins.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger:        logger,
		injectTimeout: injectTimeout,
		tabs:          map[int]*conn{},
		waiters:       map[int][]chan struct{}{},
	}
}

// HandleBridge upgrades the request to the browser bridge connection. A new bridge
// replaces the previous one.
func (h *Hub) HandleBridge(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("Hub: bridge upgrade failed: %v", err)
		return
	}
	c := &conn{ws: ws}

	h.mu.Lock()
	previous := h.bridge
	h.bridge = c
	h.mu.Unlock()
	if previous != nil {
		previous.ws.Close() //nolint:errcheck
	}
	h.logger.Println("Hub: browser bridge connected")

	h.serve(r.Context(), c, func() {
		h.mu.Lock()
		if h.bridge == c {
			h.bridge = nil
		}
		h.mu.Unlock()
		h.logger.Println("Hub: browser bridge disconnected")
	})
}

// HandleTab upgrades the request to the content script connection of the tab given by
// the "tabId" query parameter.
func (h *Hub) HandleTab(w http.ResponseWriter, r *http.Request) {
	tabID, err := strconv.Atoi(r.URL.Query().Get("tabId"))
	if err != nil || tabID <= 0 {
		http.Error(w, "invalid tabId", http.StatusBadRequest)
		return
	}
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("Hub: tab %d upgrade failed: %v", tabID, err)
		return
	}
	c := &conn{ws: ws}

	h.mu.Lock()
	previous := h.tabs[tabID]
	h.tabs[tabID] = c
	for _, ch := range h.waiters[tabID] {
		close(ch)
	}
	delete(h.waiters, tabID)
	h.mu.Unlock()
	if previous != nil {
		previous.ws.Close() //nolint:errcheck
	}

	h.serve(r.Context(), c, func() {
		h.mu.Lock()
		if h.tabs[tabID] == c {
			delete(h.tabs, tabID)
		}
		h.mu.Unlock()
	})
}

// serve keeps the connection alive until the peer goes away, then runs onClose.
func (h *Hub) serve(ctx context.Context, c *conn, onClose func()) {
	defer func() {
		onClose()
		c.ws.Close() //nolint:errcheck
	}()

	c.ws.SetReadDeadline(time.Now().Add(pongWait)) //nolint:errcheck
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := c.ping(); err != nil {
					return
				}
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Printf("Hub: unexpected close: %v", err)
			}
			return
		}
	}
}

// ShowMessage implements domain.PageSurface.
func (h *Hub) ShowMessage(ctx context.Context, tab domain.PageTab, message string, isError bool) error {
	return h.command(ctx, BridgeCommand{Type: BridgeCommand_ShowMessage, TabID: tab.ID, Message: message, IsError: isError})
}

// ReplaceSelection implements domain.PageSurface.
func (h *Hub) ReplaceSelection(ctx context.Context, tab domain.PageTab, text string) error {
	return h.command(ctx, BridgeCommand{Type: BridgeCommand_ReplaceSelection, TabID: tab.ID, Text: text})
}

// OpenPopup implements domain.PageSurface.
func (h *Hub) OpenPopup(ctx context.Context) error {
	return h.command(ctx, BridgeCommand{Type: BridgeCommand_OpenPopup})
}

// InjectContentScript implements domain.PageSurface. It returns once the injected script
// has connected back, or fails after the inject timeout.
func (h *Hub) InjectContentScript(ctx context.Context, tab domain.PageTab, script string) error {
	h.mu.Lock()
	_, connected := h.tabs[tab.ID]
	ready := make(chan struct{})
	if !connected {
		h.waiters[tab.ID] = append(h.waiters[tab.ID], ready)
	}
	h.mu.Unlock()

	if connected {
		return h.command(ctx, BridgeCommand{Type: BridgeCommand_InjectScript, TabID: tab.ID, Script: script})
	}
	defer h.stopWaiting(tab.ID, ready)

	if err := h.command(ctx, BridgeCommand{Type: BridgeCommand_InjectScript, TabID: tab.ID, Script: script}); err != nil {
		return err
	}

	timer := time.NewTimer(h.injectTimeout)
	defer timer.Stop()
	select {
	case <-ready:
		return nil
	case <-timer.C:
		return fmt.Errorf("tab %d did not connect after injecting %s: %w", tab.ID, script, domain.ErrPageNotConnected)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// stopWaiting drops ready from the waiters of tabID. It is a no-op once the tab connected.
func (h *Hub) stopWaiting(tabID int, ready chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	waiting := slices.DeleteFunc(h.waiters[tabID], func(ch chan struct{}) bool { return ch == ready })
	if len(waiting) == 0 {
		delete(h.waiters, tabID)
		return
	}
	h.waiters[tabID] = waiting
}

// SendToContent implements domain.PageSurface.
func (h *Hub) SendToContent(ctx context.Context, tab domain.PageTab, msg domain.PageMessage) error {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("tab_id", tab.ID),
		attribute.String("type", string(msg.Type)),
	))
	defer span.End()

	h.mu.RLock()
	c, ok := h.tabs[tab.ID]
	h.mu.RUnlock()
	if !ok {
		telemetry.RecordErrorAndStatus(span, domain.ErrPageNotConnected)
		return domain.ErrPageNotConnected
	}
	err := c.send(msg)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

func (h *Hub) command(ctx context.Context, cmd BridgeCommand) error {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("command", string(cmd.Type)),
		attribute.Int("tab_id", cmd.TabID),
	))
	defer span.End()

	h.mu.RLock()
	bridge := h.bridge
	h.mu.RUnlock()
	if bridge == nil {
		err := fmt.Errorf("browser bridge: %w", domain.ErrPageNotConnected)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	err := bridge.send(cmd)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// InitHub registers the Hub as the PageSurface.
type InitHub struct {
	Logger        *log.Logger   `resolve:""`
	InjectTimeout time.Duration `config:"PAGE_INJECT_TIMEOUT" default:"2s"`
}

// Initialize registers the Hub.
func (i InitHub) Initialize(ctx context.Context) (context.Context, error) {
	hub := NewHub(i.Logger, i.InjectTimeout)
	depend.Register(hub)
	depend.Register[domain.PageSurface](hub)
	return ctx, nil
}
