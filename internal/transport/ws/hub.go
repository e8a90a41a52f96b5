package ws

import (
	"askgate/internal/model"
	"context"
	"encoding/json"
	"sync"

	"github.com/ternarybob/arbor"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgAskEvent MessageType = "ask_event"
	MsgWelcome  MessageType = "welcome"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans ask events out to every connected observer
type Hub struct {
	observers map[*Connection]struct{}

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan []byte
	done       chan struct{}
	closeOnce  sync.Once

	logger arbor.ILogger
}

// Connection represents one observer socket
type Connection struct {
	ID   string
	Send chan []byte
	Hub  *Hub
}

// NewHub creates a new WebSocket hub and starts its loop
func NewHub(logger arbor.ILogger) *Hub {
	h := &Hub{
		observers:  make(map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		logger:     logger,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.observers[conn] = struct{}{}
			count := len(h.observers)
			h.mu.Unlock()
			h.logger.Info().Str("conn_id", conn.ID).Int("observers", count).Msg("Observer connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.observers[conn]; ok {
				delete(h.observers, conn)
				close(conn.Send)
				h.logger.Info().Str("conn_id", conn.ID).Int("observers", len(h.observers)).Msg("Observer disconnected")
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.RLock()
			for conn := range h.observers {
				select {
				case conn.Send <- data:
				default:
					// Slow observer, drop the message
				}
			}
			h.mu.RUnlock()

		case <-h.done:
			h.mu.Lock()
			for conn := range h.observers {
				delete(h.observers, conn)
				close(conn.Send)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// ObserverCount returns the number of connected observers
func (h *Hub) ObserverCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.observers)
}

// Close disconnects every observer and stops the hub loop
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Record broadcasts an ask event to all observers (implements service.EventRecorder)
func (h *Hub) Record(ctx context.Context, event *model.AskEvent) error {
	data, err := encode(MsgAskEvent, event)
	if err != nil {
		return err
	}

	select {
	case h.broadcast <- data:
		return nil
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func encode(msgType MessageType, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&Message{Type: msgType, Payload: body})
}
