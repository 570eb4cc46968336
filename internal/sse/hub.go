package sse

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/Homestead_Go/internal/logger"
)

// Client represents a connected SSE client following one game session
type Client struct {
	ID           string
	SessionID    string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all events, otherwise only specified types
}

func (c *Client) wants(evt Event) bool {
	if c.SessionID != evt.SessionID {
		return false
	}
	return c.EventFilter == nil || c.EventFilter[evt.Type]
}

// Hub manages SSE client connections and event broadcasting
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	unregister chan string
	mu         sync.RWMutex
	closed     bool // guarded by mu; set once Stop has closed every client
	shutdown   chan struct{}
	wg         sync.WaitGroup
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts the hub down and closes every client channel
func (h *Hub) Stop() {
	close(h.shutdown)
	h.wg.Wait()

	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for _, client := range h.clients {
		close(client.EventChannel)
	}
	h.clients = make(map[string]*Client)
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(evt) {
					continue
				}
				select {
				case client.EventChannel <- evt:
				default: // buffer full, drop
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client for one session. An empty eventTypes list means
// every event type.
func (h *Hub) Register(sessionID string, eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		SessionID:    sessionID,
		EventChannel: make(chan Event, ClientEventBuffer),
	}

	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	// hub is closed; the stream ends as soon as it starts
	if h.closed {
		close(client.EventChannel)
		return client
	}
	h.clients[client.ID] = client
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for the clients following sessionID
func (h *Hub) Broadcast(sessionID, eventType string, payload interface{}) {
	evt := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- evt:
	default:
		logger.Warn(LogMsgEventDropped, "type", eventType, logger.AttrKeySessionID, sessionID)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage formats an event as "id/event/data" lines
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	msg := "id: " + evt.ID + "\n"
	msg += "event: " + evt.Type + "\n"
	msg += "data: " + string(data) + "\n\n"

	return []byte(msg), nil
}
